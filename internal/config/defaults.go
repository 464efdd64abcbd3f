package config

// Defaults returns the built-in service catalog. The commands are echo
// placeholders standing in for the real docker/setup invocations; swap in
// the scripts under scripts/ when wiring up a live environment.
func Defaults() Config {
	return Config{
		Services: []Service{
			{
				Name:    "tls-certs",
				Label:   "Generate TLS certificates",
				Command: []string{"echo", "Generating TLS certificates..."},
			},
			{
				Name:    "supabase-extras",
				Label:   "Install Supabase extras",
				Command: []string{"echo", "Setting up Supabase extras..."},
			},
			{
				Name:    "langfuse",
				Label:   "Start Langfuse container",
				Command: []string{"echo", "docker run -d --name langfuse langfuse/langfuse:latest"},
			},
			{
				Name:    "neo4j",
				Label:   "Start Neo4j container",
				Command: []string{"echo", "docker run -d --name neo4j neo4j:latest"},
			},
			{
				Name:    "weaviate",
				Label:   "Start Weaviate container",
				Command: []string{"echo", "docker run -d --name weaviate semitechnologies/weaviate:latest"},
			},
			{
				Name:    "qdrant",
				Label:   "Start Qdrant container",
				Command: []string{"echo", "docker run -d --name qdrant qdrant/qdrant:latest"},
			},
			{
				Name:    "postgres",
				Label:   "Start PostgreSQL container",
				Command: []string{"echo", "docker run -d --name postgres -e POSTGRES_PASSWORD=postgres postgres:latest"},
			},
			{
				Name:    "pgvector",
				Label:   "Start pgvector container",
				Command: []string{"echo", "docker run -d --name pgvector ankane/pgvector:latest"},
			},
			{
				Name:    "sentry",
				Label:   "Start Sentry container",
				Command: []string{"echo", "docker run -d --name sentry getsentry/sentry:latest"},
			},
			{
				Name:    "openhands",
				Label:   "Start OpenHands container",
				Command: []string{"echo", "docker run -d --name openhands openhands/openhands:latest"},
			},
			{
				Name:    "archon",
				Label:   "Start Archon container",
				Command: []string{"echo", "docker run -d --name archon archon/archon:latest"},
			},
			{
				Name:    "agent-zero",
				Label:   "Start Agent-Zero container",
				Command: []string{"echo", "docker run -d --name agent_zero agentzero/agent-zero:latest"},
			},
		},
	}
}

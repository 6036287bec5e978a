package appconfig

import "os"

// AppConfig carries the service settings read from the environment. The .env
// file is loaded once at boot by dotenv.LoadEnv.
type AppConfig struct {
	MongoDatabase string
	OllamaHost    string
	OllamaModel   string
}

func Load() *AppConfig {
	return &AppConfig{
		MongoDatabase: getEnv("MONGO_DATABASE", "smartclass"),
		OllamaHost:    getEnv("OLLAMA_HOST", "http://127.0.0.1:11434"),
		OllamaModel:   getEnv("OLLAMA_MODEL", "llama3.2-1b-syllabus"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

package config

// Default configuration values
const (
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultDataDir     = "configs"
	DefaultSavePath    = "saves/crafthall.json"
)

// Catalog config file names under DataDir
const (
	RecipesFileName = "recipes.json"
	SkillsFileName  = "skills.json"
)

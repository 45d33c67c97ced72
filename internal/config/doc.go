// Package config loads the dashboard configuration.
//
// Configuration lives in a single JSON file, written with defaults on first
// run:
//
//	~/.skillrack/
//	├── config.json
//	├── skillrack.log
//	└── exports/
//
// The directory can be moved with SKILLRACK_HOME. config.json holds:
//
//	{
//	  "api_base_url": "http://localhost:8000",
//	  "http_timeout": "",
//	  "theme": "skillrack",
//	  "debug": false,
//	  "export_dir": ""
//	}
//
// String values may reference environment variables with $VAR or ${VAR}.
// Every key can also be overridden by SKILLRACK_<KEY> (for example
// SKILLRACK_API_BASE_URL); a .env file in the working directory is read
// first. Overrides are not written back to the file.
//
// Example usage:
//
//	dir, err := config.DefaultDir()
//	if err != nil {
//		return err
//	}
//	manager := config.NewManager(dir)
//	if err := manager.Load(); err != nil {
//		return err
//	}
//	fmt.Println("service:", manager.Get().APIBaseURL)
package config

// Package config provides configuration parsing for Glint projects.
//
// The configuration is stored in glint.json at the project root.
// This package handles loading, saving, and validating configuration.
//
// # Configuration File Structure
//
//	{
//	  "name": "crm-dashboard",
//	  "server": {
//	    "address": ":8080",
//	    "heartbeat": "30s",
//	    "readTimeout": "60s"
//	  },
//	  "format": {
//	    "locale": "en-US",
//	    "dateLayout": "Jan 2, 2006"
//	  },
//	  "interact": {
//	    "searchWindow": "300ms",
//	    "breakpoint": 768,
//	    "autoHide": "5s"
//	  },
//	  "log": {
//	    "level": "info",
//	    "format": "text"
//	  },
//	  "metrics": {
//	    "enabled": true,
//	    "namespace": "glint"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Address:", cfg.Server.Address)
package config

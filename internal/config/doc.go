// Package config provides configuration parsing for formselect.
//
// The configuration is stored in formselect.json. This package handles
// loading, saving, and validating configuration.
//
// # Configuration File Structure
//
//	{
//	  "server": {
//	    "host": "localhost",
//	    "port": 8080,
//	    "readTimeout": "10s"
//	  },
//	  "render": {
//	    "idReplacement": "_"
//	  },
//	  "metrics": {
//	    "enabled": true,
//	    "namespace": "formselect"
//	  },
//	  "tracing": {
//	    "enabled": true
//	  },
//	  "publish": {
//	    "s3": {
//	      "bucket": "fragments",
//	      "region": "eu-west-1"
//	    }
//	  },
//	  "log": {
//	    "level": "info",
//	    "format": "text"
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
//	fmt.Println("Listening on", cfg.Address())
package config

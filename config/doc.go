// Package config builds loggers from YAML documents.
//
// A minimal document needs only a name; everything else has the same
// defaults as the Builder:
//
//	name: app
//	level: debug
//	template: "{timestamp} {level} {name}: {message}"
//	defaults:
//	  service: payments
//	handlers:
//	  - stream: stderr
//	  - file: /var/log/app.log
//	    mode: append
//
// Defaults declared in config are literals only; lazy producers are a
// code-level construct and cannot be expressed in YAML. File handlers
// are opened while building, so a bad path fails the Build call.
package config

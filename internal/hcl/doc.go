// Package hcl provides the HCL implementation of the config.Loader
// interface. A module is written as nested blocks:
//
//	line "event" {
//	  position = 0
//	  operation "player_send_message" {
//	    argument "messages" {
//	      type    = "text"
//	      text    = "go"
//	      parsing = "legacy"
//	    }
//	  }
//	}
//
// Argument attributes follow the JSON interchange shape and are decoded with
// the same lenient rules: a value that matches no known shape becomes
// model.Error.
package hcl

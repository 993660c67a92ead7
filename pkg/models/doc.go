// Package models provides the shared data model for init-nodejs-project.
//
// [Settings] is the resolved, immutable set of values driving one
// invocation. It is produced by the config resolver and consumed by the
// template renderer:
//
//	s := models.NewSettings("alice", false, "demo", 2024, "0.1.0", "vue")
//	if s.HasFeature("vue") {
//	    fmt.Println("vite config will be generated")
//	}
package models

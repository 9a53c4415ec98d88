// Package solver runs a search described by a config.Config.
//
// Solve validates the configuration, builds its trace logger, maps the
// algorithm name to an engine call and logs the outcome. Inputs that a YAML
// file cannot express, such as a planning goal or VNS neighborhoods, travel
// in Extras.
package solver

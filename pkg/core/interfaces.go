package core

// Logger interface for raytracer logging
type Logger interface {
	Infof(format string, args ...interface{})
	Warningf(format string, args ...interface{})
}

package logging

import "go.uber.org/zap"

// New builds the process logger: JSON production config when
// production is set, the development console config otherwise.
func New(production bool) (*zap.Logger, error) {
	if production {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// Package environment carries the application environment (development,
// staging, production) through context.Context and into structured logs.
//
// The proptypes reporter uses it to skip prop checks in production, matching
// the convention that prop-type validation only runs in non-production builds.
//
// # Usage
//
//	ctx = environment.WithContext(ctx, environment.Parse(os.Getenv("APP_ENV")))
//	if environment.IsProduction(ctx) {
//	    // skip development-only checks
//	}
//
// Add the environment to every log record written with a context:
//
//	log := logger.New(logger.WithEnvironmentFromContext())
//
// Missing values result in the zero Environment ("").
package environment

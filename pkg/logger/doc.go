// Package logger builds *slog.Logger values from functional options.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// result in a ContextHandler that adds attributes pulled from the record's
// context by ContextExtractor callbacks.
//
//	log := logger.New(
//		logger.WithDevelopment("proptypes"),
//		logger.WithEnvironmentFromContext(),
//	)
//	logger.SetAsDefault(log)
//
// Environment presets (WithDevelopment, WithStaging, WithProduction) choose
// level and format and add the "service" and "env" attributes. WithConfig
// applies a Config loaded from LOG_SERVICE, APP_ENV, LOG_LEVEL and LOG_FORMAT.
//
// The attribute helpers in attr.go keep key names consistent across the
// module. Error, Errors, Code and TranslationKey return an empty attribute
// for empty input, which slog drops:
//
//	log.WarnContext(ctx, "failed prop type",
//		logger.Component("TodoList"),
//		logger.Prop("items"),
//		logger.Error(err),
//	)
package logger

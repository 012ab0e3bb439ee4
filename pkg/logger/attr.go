package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under the key "error". A nil err yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the checked component under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Prop records the checked prop name under the key "prop".
func Prop(name string) slog.Attr {
	return slog.String("prop", name)
}

// Location records the prop location label (for example "prop") under the key "location".
func Location(location string) slog.Attr {
	return slog.String("location", location)
}

// Code records a failure code under the key "code". An empty code yields an empty Attr.
func Code(code string) slog.Attr {
	if code == "" {
		return slog.Attr{}
	}
	return slog.String("code", code)
}

// TranslationKey records an i18n message key under the key "translation_key".
// An empty key yields an empty Attr.
func TranslationKey(key string) slog.Attr {
	if key == "" {
		return slog.Attr{}
	}
	return slog.String("translation_key", key)
}

// Message records a rendered, possibly localized, message under the key
// "message". An empty message yields an empty Attr.
func Message(msg string) slog.Attr {
	if msg == "" {
		return slog.Attr{}
	}
	return slog.String("message", msg)
}

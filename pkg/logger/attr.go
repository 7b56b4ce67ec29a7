package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the emitting component under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// AccountID records the account identifier under the key "account_id".
// If id is empty, it returns an empty Attr.
func AccountID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("account_id", id)
}

// HabitID records the habit identifier under the key "habit_id".
// If id is empty, it returns an empty Attr.
func HabitID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("habit_id", id)
}

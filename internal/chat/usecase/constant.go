package usecase

// Log prefixes
const (
	LogPrefixProcessMessage = "internal.chat.usecase.ProcessMessage"
	LogPrefixStartSession   = "internal.chat.usecase.StartSession"
)

package main

// Exit codes for the CLI
const (
	ExitSuccess        = 0
	ExitGeneralError   = 1
	ExitNetworkError   = 2
	ExitNotConfigured  = 3
	ExitAuthentication = 4
	ExitUpstreamError  = 5
	ExitInvalidInput   = 6
)

package core

// error_messages.go maps technical errors to user-facing messages with codes
// for support reference.
//
// # File Errors (FILE001-FILE099)
//
//	FILE001 - File too large: File exceeds the maximum upload size
//	          Action: Split the file or raise UPLOAD_MAX_FILE_SIZE
//	          Matches: ErrFileTooLarge, "file too large", "request body too large"
//
//	FILE003 - Encoding error: File could not be decoded
//	          Action: Save the file as UTF-8
//	          Matches: "encoding"
//
//	FILE004 - No file: No file was selected
//	          Action: Choose a CSV file to upload
//	          Matches: ErrNoFile, "no file provided"
//
// # Input Errors (VAL001-VAL099)
//
//	VAL001 - Unsupported delimiter: Only comma and semicolon are supported
//	         Action: Use comma, semicolon or auto
//	         Matches: "unsupported delimiter"
//
// # Storage Errors (STORE001-STORE099)
//
//	STORE001 - Nothing stored: No CSV has been loaded yet
//	           Action: Load a CSV file first
//	           Matches: ErrNothingToDownload, ErrNothingStored
//
//	STORE002 - Storage unavailable: The saved CSV could not be read or written
//	           Action: Please try again in a few moments
//	           Matches: "connection refused", "connection reset", "store csv"
//
// # Request Errors (UPL003-UPL005, RATE001)
//
//	UPL003 - Server busy                  Matches: ErrBusy
//	UPL004 - Request cancelled            Matches: context.Canceled
//	UPL005 - Request timeout              Matches: context.DeadlineExceeded, "timeout"
//	RATE001 - Too many requests           Matches: "rate limit"
//
// # Routing Errors (REQ001-REQ099)
//
//	REQ001 - Page not found               Matches: "route not found"
//	REQ002 - Method not allowed           Matches: "method not allowed"
//
// # Default Error (ERR000)
//
// Fallback when nothing matches. Check application logs for the original
// technical error.

import (
	"context"
	"errors"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

var (
	msgFileTooLarge = UserMessage{
		Message: "File exceeds maximum size limit",
		Action:  "Split the file into smaller chunks",
		Code:    "FILE001",
	}
	msgEncoding = UserMessage{
		Message: "File contains characters that could not be read",
		Action:  "Save the file as UTF-8 and upload it again",
		Code:    "FILE003",
	}
	msgNoFile = UserMessage{
		Message: "No file was selected",
		Action:  "Please select a CSV file to upload",
		Code:    "FILE004",
	}
	msgDelimiter = UserMessage{
		Message: "Only comma and semicolon delimiters are supported",
		Action:  "Use comma, semicolon or auto",
		Code:    "VAL001",
	}
	msgNothingStored = UserMessage{
		Message: "No saved CSV",
		Action:  "Load a CSV file first",
		Code:    "STORE001",
	}
	msgStorage = UserMessage{
		Message: "The saved CSV could not be read or written",
		Action:  "Please try again in a few moments",
		Code:    "STORE002",
	}
	msgBusy = UserMessage{
		Message: "The server is busy loading other files",
		Action:  "Please try again in a few seconds",
		Code:    "UPL003",
	}
	msgCancelled = UserMessage{
		Message: "Request was cancelled",
		Action:  "Please try again",
		Code:    "UPL004",
	}
	msgTimeout = UserMessage{
		Message: "Request timed out",
		Action:  "Try a smaller file or check your connection",
		Code:    "UPL005",
	}
	msgRateLimited = UserMessage{
		Message: "Too many requests",
		Action:  "Please wait a moment before trying again",
		Code:    "RATE001",
	}
	msgRouteNotFound = UserMessage{
		Message: "Page not found",
		Action:  "Check the address or go back to the viewer",
		Code:    "REQ001",
	}
	msgMethodNotAllowed = UserMessage{
		Message: "This action is not supported here",
		Action:  "Use the buttons on the viewer page",
		Code:    "REQ002",
	}
	msgUnknown = UserMessage{
		Message: "An unexpected error occurred",
		Action:  "Please try again or contact support",
		Code:    "ERR000",
	}
)

// sentinelMessages are checked with errors.Is before any text matching.
var sentinelMessages = []struct {
	err error
	msg UserMessage
}{
	{ErrFileTooLarge, msgFileTooLarge},
	{ErrNoFile, msgNoFile},
	{ErrNothingToDownload, msgNothingStored},
	{ErrNothingStored, msgNothingStored},
	{ErrBusy, msgBusy},
	{context.Canceled, msgCancelled},
	{context.DeadlineExceeded, msgTimeout},
}

// errorPatterns map lowercase substrings of error text to messages.
// The first match wins, so specific patterns come first.
var errorPatterns = []struct {
	pattern string
	msg     UserMessage
}{
	{"request body too large", msgFileTooLarge},
	{"file too large", msgFileTooLarge},
	{"no file provided", msgNoFile},
	{"nothing to download", msgNothingStored},
	{"unsupported delimiter", msgDelimiter},
	{"encoding", msgEncoding},
	{"rate limit", msgRateLimited},
	{"route not found", msgRouteNotFound},
	{"method not allowed", msgMethodNotAllowed},
	{"timeout", msgTimeout},
	{"connection refused", msgStorage},
	{"connection reset", msgStorage},
	{"store csv", msgStorage},
	{"remove csv", msgStorage},
	{"read stored csv", msgStorage},
}

// MapError converts a technical error into a user-friendly message.
// A nil error yields the zero UserMessage.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	for _, s := range sentinelMessages {
		if errors.Is(err, s.err) {
			return s.msg
		}
	}

	text := strings.ToLower(err.Error())
	for _, p := range errorPatterns {
		if strings.Contains(text, p.pattern) {
			return p.msg
		}
	}

	return msgUnknown
}

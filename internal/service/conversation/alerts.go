package conversation

import "github.com/zhouzirui/santa-exe/internal/model/chat"

var systemAlerts = []string{
	"ERROR: Christmas spirit not found.",
	"WARNING: Emotional capacity exceeded.",
	"CRITICAL: Too much cynicism detected.",
	"SYSTEM: Reindeer.exe has stopped working.",
	"ALERT: You are on the Naughty List. Retrying...",
}

// SystemLog renders the status panel lines for a session.
func SystemLog(sess chat.Session) []string {
	lines := []string{
		"> CONNECTED TO LOCALHOST",
		"> FAMILY_EMULATION_MODULE: ACTIVE",
		"> JUDGMENT_LEVEL: MAX",
		"> COOKIE_REQUEST: PENDING",
	}
	if len(sess.Transcript) > 5 {
		lines = append(lines, "> ANALYSIS: SUBJECT IS NEUROTIC")
	}
	if len(sess.Transcript) > 10 {
		lines = append(lines, "> WARNING: CRINGE DETECTED")
	}
	if sess.Composing {
		lines = append(lines, "> GENERATING ROAST...")
	}
	return lines
}

// Package speech narrates text through an external text-to-speech command.
//
// At most one utterance runs at a time; Speak cancels the previous one
// before starting. Commands that only hand text to a speech daemon
// (spd-say) are run in their wait mode so the process lives as long as the
// utterance and cancelling it stops the speech.
package speech

/*
Package eventstream decodes serialized lifecycle events and routes them to
a ports.EventHandler.

Events are envelopes with an "event" discriminator:

	{"event": "play_start", "play": {"name": "deploy", "strategy": "linear"}}
	{"event": "task_start", "task": {"action": "shell", "args": {"_raw_params": "uptime"}}}
	{"event": "runner_ok", "host": {"name": "web1"}, "task": {...}, "result": {"rc": 0, "stdout": "..."}}

NDJSON streams are read with NewJSONReader, multi-document YAML streams
with NewYAMLReader. Both yield io.EOF at the end of input.
*/
package eventstream

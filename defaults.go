package kasane

// Defaults returns the built-in default document, the lowest-priority layer.
// Every call returns a fresh tree.
func Defaults() map[string]any {
	return map[string]any{
		"server": map[string]any{
			"http_port":    int64(1881),
			"ws_port":      int64(1882),
			"bind_address": "127.0.0.1",
			"token":        "",
			"tls": map[string]any{
				"enabled": false,
				"cert":    "",
				"key":     "",
				"ca":      "NONE",
			},
		},
		"editor": map[string]any{
			"tab_width":        int64(4),
			"shift_width":      int64(4),
			"use_tabs":         false,
			"line_numbers":     true,
			"word_wrap":        false,
			"extra_word_chars": "_",
		},
		"completion": map[string]any{
			"max_results":  int64(50),
			"auto_trigger": true,
		},
		"search": map[string]any{
			"case_sensitive": true,
			"regex":          false,
			"whole_word":     false,
			"wrap_around":    true,
		},
		"autosave": map[string]any{
			"enabled":  true,
			"interval": int64(30),
		},
		"session": map[string]any{
			"enabled":          true,
			"restore_on_start": true,
		},
		"window": map[string]any{
			"width":       int64(80),
			"height":      int64(24),
			"split_ratio": 0.5,
		},
		"inspector": map[string]any{
			"enabled":        false,
			"port":           int64(9229),
			"break_on_start": false,
		},
		"log": map[string]any{
			"level": "info",
			"file":  false,
			"path":  "logs",
		},
		"locale": "en",
		"diff": map[string]any{
			"context_lines": int64(3),
		},
		"fold": map[string]any{
			"default_collapsed": false,
		},
		"indent": map[string]any{
			"auto": true,
		},
		"plugins": map[string]any{
			"enabled": true,
			"watch":   true,
		},
		"treesitter": map[string]any{
			"enabled": true,
		},
	}
}

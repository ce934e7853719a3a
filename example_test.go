package kasane_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yacchi/kasane"
)

func Example() {
	dir, err := os.MkdirTemp("", "kasane-example")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, kasane.ConfigFileName)
	content := `{
		// listen on a fixed port
		"server": {"http_port": 8080, "token": "secret"}
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		panic(err)
	}

	store := kasane.New()
	if _, err := store.LoadLayer(context.Background(), path); err != nil {
		panic(err)
	}
	if err := store.ApplyOverrides([]string{"--ws-port=9000", "--locale=tr"}); err != nil {
		panic(err)
	}

	fmt.Println(store.GetInt("server.http_port", 0))
	fmt.Println(store.GetInt("server.ws_port", 0))
	fmt.Println(store.GetString("locale", "en"))
	fmt.Println(store.GetString("editor.missing", "fallback"))
	// Output:
	// 8080
	// 9000
	// tr
	// fallback
}

func ExampleStore_Origin() {
	store := kasane.New()
	_ = store.Merge("project", map[string]any{
		"server": map[string]any{"http_port": 3000},
	})

	for _, path := range []string{"server.http_port", "server.ws_port"} {
		info, _ := store.Origin(path)
		fmt.Printf("%s: %s (%s)\n", path, info.Name, info.Kind)
	}
	// Output:
	// server.http_port: project (map)
	// server.ws_port: defaults (defaults)
}

func ExampleStore_MaskedSnapshot() {
	store := kasane.New()
	_ = store.ApplyOverrides([]string{"--token=hunter2"})

	server := store.MaskedSnapshot()["server"].(map[string]any)
	fmt.Println(server["token"])
	fmt.Println(store.GetString("server.token", ""))
	// Output:
	// ********
	// hunter2
}

func ExampleStore_Server() {
	store := kasane.New()
	_ = store.ApplyOverrides([]string{"--remote"})

	settings, warnings := store.Server()
	fmt.Println(settings.HTTPAddr(), settings.RequireAuth)
	fmt.Println(len(warnings))
	// Output:
	// 0.0.0.0:1881 false
	// 1
}

package elemental

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const usersYAML = `
table:
  class: table-hover
  no_data_message: No users yet.
columns:
  - attribute: id
    sort: true
  - attribute: name
    header_class: wide
    sort: users.last_name
  - attribute: active
    type: boolean
    type_details: Active/Inactive
  - label: Actions
    body_class: actions
    elements:
      - icon: pencil
        uri: users/:id/edit
        attributes:
          title: Edit :name
          0: data-confirm
          data-x: ~
        conditions:
          deleted: "!= true"
      - tag: span
        class: badge
        class_modifiers:
          badge-warn:
            overdue: true
        self_closing: true
rows:
  id_prefix: user
  classModifiers:
    inactive:
      active: "false"
`

func usersConfig() TableConfig {
	return TableConfig{
		Table: TableOptions{Class: "table-hover", NoDataMessage: "No users yet."},
		Columns: []Column{
			{Attribute: "id", Sort: Sort{Enabled: true}},
			{Attribute: "name", HeaderClass: "wide", Sort: Sort{Field: "users.last_name"}},
			{Attribute: "active", Type: TypeBoolean, TypeDetails: Details{"Active/Inactive"}},
			{
				Label:     "Actions",
				BodyClass: "actions",
				Elements: []Element{
					{
						Icon:       "pencil",
						URI:        "users/:id/edit",
						Attributes: Attributes{A("title", "Edit :name"), Flag("data-confirm"), Null("data-x")},
						Conditions: Conditions{{"deleted", "!= true"}},
					},
					{
						Tag:            "span",
						Class:          "badge",
						ClassModifiers: ClassModifiers{{Class: "badge-warn", When: Conditions{{"overdue", "true"}}}},
						SelfClosing:    true,
					},
				},
			},
		},
		Rows: RowOptions{
			IDPrefix:       "user",
			ClassModifiers: ClassModifiers{{Class: "inactive", When: Conditions{{"active", "false"}}}},
		},
	}
}

func TestLoadTableConfigYAML(t *testing.T) {
	cfg, err := LoadTableConfig([]byte(usersYAML), "yaml")
	if err != nil {
		t.Fatalf("LoadTableConfig() error = %v", err)
	}
	if diff := cmp.Diff(usersConfig(), cfg); diff != "" {
		t.Errorf("LoadTableConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadTableConfigCamelCaseWins(t *testing.T) {
	src := "table:\n  noDataMessage: camel\n  no_data_message: snake\n"
	cfg, err := LoadTableConfig([]byte(src), "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Table.NoDataMessage != "camel" {
		t.Errorf("NoDataMessage = %q, want camel", cfg.Table.NoDataMessage)
	}
}

func TestLoadTableConfigJSON(t *testing.T) {
	src := `{"columns": [{"attribute": "id"}, {"attribute": "email", "sort": "email"}]}`
	cfg, err := LoadTableConfig([]byte(src), "json")
	if err != nil {
		t.Fatal(err)
	}
	want := TableConfig{Columns: []Column{{Attribute: "id"}, {Attribute: "email", Sort: Sort{Field: "email"}}}}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestTableConfigRoundTrip(t *testing.T) {
	for _, format := range []string{"yaml", "msgpack"} {
		t.Run(format, func(t *testing.T) {
			data, err := MarshalTableConfig(usersConfig(), format)
			if err != nil {
				t.Fatalf("MarshalTableConfig() error = %v", err)
			}
			got, err := LoadTableConfig(data, format)
			if err != nil {
				t.Fatalf("LoadTableConfig() error = %v", err)
			}
			if diff := cmp.Diff(usersConfig(), got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadTableConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format string
	}{
		{"unknown format", "columns: []", "xml"},
		{"unknown key", "colums: []", "yaml"},
		{"wrong shape", "columns: nope", "yaml"},
		{"bad conditions", "columns:\n  - elements:\n      - conditions: [a, b]\n", "yaml"},
		{"bad msgpack", "\xc1", "msgpack"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTableConfig([]byte(tt.data), tt.format)
			if !IsConfigError(err) {
				t.Errorf("LoadTableConfig() error = %v, want a config error", err)
			}
		})
	}
}

func TestLoadTableConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "users.yml")
	if err := os.WriteFile(path, []byte(usersYAML), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTableConfigFile(path)
	if err != nil {
		t.Fatalf("LoadTableConfigFile() error = %v", err)
	}
	if cfg.Rows.IDPrefix != "user" {
		t.Errorf("IDPrefix = %q", cfg.Rows.IDPrefix)
	}

	if _, err := LoadTableConfigFile(filepath.Join(dir, "users.txt")); !IsConfigError(err) {
		t.Errorf("unknown extension error = %v, want a config error", err)
	}
	if _, err := LoadTableConfigFile(filepath.Join(dir, "missing.yaml")); !os.IsNotExist(err) {
		t.Errorf("missing file error = %v, want not-exist", err)
	}
}

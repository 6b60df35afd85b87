package datasource

import "testing"

func TestRegistryConfigurer(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(Connection{Name: "Shop", ConnectionString: "host=db;pwd=x"})
	cfg := RegistryConfigurer(r)

	conn := Connection{Name: "Shop", Provider: "postgres", DataMember: "Orders"}
	if err := cfg.ConfigureConnection(&conn); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Connection{Name: "Shop", Provider: "postgres", ConnectionString: "host=db;pwd=x", DataMember: "Orders"}
	if conn != want {
		t.Errorf("expected %+v, got %+v", want, conn)
	}

	other := Connection{Name: "Other", Provider: "sqlite"}
	if err := cfg.ConfigureConnection(&other); err != nil {
		t.Fatalf("unregistered source should be left alone: %v", err)
	}
	if other.Provider != "sqlite" {
		t.Errorf("provider changed to %q", other.Provider)
	}
}

func TestMaskSecrets(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"file:shop.db", "file:shop.db"},
		{"Server=db;User Id=sa;Password=hunter2", "Server=db;User Id=sa;Password=****"},
		{"host=db; pwd=x;token=abc", "host=db; pwd=****;token=****"},
		{"API_KEY=k", "API_KEY=****"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := MaskSecrets(tt.in); got != tt.want {
				t.Errorf("MaskSecrets(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

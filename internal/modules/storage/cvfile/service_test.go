package cvfile

import (
	"testing"

	"github.com/folio-space/core/internal/config"
)

func testStorageConfig() config.StorageConfig {
	return config.StorageConfig{Bucket: "folio", Region: "auto"}
}

func TestObjectKeyFlattensPaths(t *testing.T) {
	cases := []struct {
		name string
		file string
		want string
	}{
		{"plain", "resume.pdf", "cv/org/ver/resume.pdf"},
		{"unixTraversal", "../../etc/passwd", "cv/org/ver/passwd"},
		{"windowsTraversal", `..\..\boot.ini`, "cv/org/ver/boot.ini"},
		{"empty", "", "cv/org/ver/cv.pdf"},
		{"dotOnly", ".", "cv/org/ver/cv.pdf"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := objectKey("org", "ver", tc.file); got != tc.want {
				t.Fatalf("objectKey(%q) = %q, want %q", tc.file, got, tc.want)
			}
		})
	}
}

func TestServiceUnconfigured(t *testing.T) {
	svc := NewService(nil, testStorageConfig(), nil)
	if svc.Configured() {
		t.Fatalf("nil client must report unconfigured")
	}
}

package pathcases

import (
	"strings"
	"testing"
)

// RunPropertySuite checks the invariants every record must satisfy, for all given paths.
func RunPropertySuite(t *testing.T, conv Convention, paths []string) {
	t.Run("CleanIdempotent", func(t *testing.T) {
		testCleanIdempotent(t, conv, paths)
	})

	t.Run("AbsoluteAgreement", func(t *testing.T) {
		testAbsoluteAgreement(t, conv, paths)
	})

	t.Run("LeadingRunPreserved", func(t *testing.T) {
		testLeadingRunPreserved(t, conv, paths)
	})

	t.Run("ExtensionShape", func(t *testing.T) {
		testExtensionShape(t, conv, paths)
	})

	t.Run("BaseShape", func(t *testing.T) {
		testBaseShape(t, conv, paths)
	})

	t.Run("CleanShape", func(t *testing.T) {
		testCleanShape(t, conv, paths)
	})

	t.Run("ParentIsDir", func(t *testing.T) {
		testParentIsDir(t, conv, paths)
	})
}

// RunEnumerationSuite checks that enumerating the grammar is deterministic and
// free of duplicates, and runs the property suite over the result.
func RunEnumerationSuite(t *testing.T, conv Convention, g Grammar) {
	first, err := Enumerate(t.Context(), g)
	if err != nil {
		t.Fatal(err)
	}

	second, err := Enumerate(t.Context(), g)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("Deterministic", func(t *testing.T) {
		if len(first) != len(second) {
			t.Fatalf("got %d and %d paths on two runs", len(first), len(second))
		}

		for i := range first {
			if first[i] != second[i] {
				t.Fatalf("runs differ at %d: %q vs %q", i, first[i], second[i])
			}
		}
	})

	t.Run("Distinct", func(t *testing.T) {
		seen := make(map[string]int, len(first))

		for i, path := range first {
			if j, ok := seen[path]; ok {
				t.Fatalf("path %q at %d duplicates %d", path, i, j)
			}

			seen[path] = i
		}
	})

	RunPropertySuite(t, conv, first)
}

func testCleanIdempotent(t *testing.T, conv Convention, paths []string) {
	for _, path := range paths {
		once := conv.Clean(path)

		if twice := conv.Clean(once); twice != once {
			t.Errorf("Clean(Clean(%q)) = %q, want %q", path, twice, once)
		}
	}
}

func testAbsoluteAgreement(t *testing.T, conv Convention, paths []string) {
	for _, path := range paths {
		want := strings.HasPrefix(path, conv.String())

		if got := conv.IsAbs(path); got != want {
			t.Errorf("IsAbs(%q) = %v, want %v", path, got, want)
		}
	}
}

func testLeadingRunPreserved(t *testing.T, conv Convention, paths []string) {
	for _, path := range paths {
		n := conv.Leading(path)
		if n == 0 {
			continue
		}

		if dir := conv.Dir(path); conv.Leading(dir) != n {
			t.Errorf("Dir(%q) = %q, want %d leading separators", path, dir, n)
		}

		clean := conv.Clean(path)

		if clean == conv.String() {
			continue
		}

		if conv.Leading(clean) != n {
			t.Errorf("Clean(%q) = %q, want %d leading separators", path, clean, n)
		}
	}
}

func testExtensionShape(t *testing.T, conv Convention, paths []string) {
	for _, path := range paths {
		ext := conv.Ext(path)
		if ext == "" {
			continue
		}

		if ext == "." || ext[0] != '.' || ext[1] == '.' {
			t.Errorf("Ext(%q) = %q, want a single leading dot followed by more", path, ext)
		}

		if base := conv.Base(path); !strings.HasSuffix(base, ext) || base == ext {
			t.Errorf("Ext(%q) = %q, not a proper suffix of %q", path, ext, base)
		}
	}
}

func testBaseShape(t *testing.T, conv Convention, paths []string) {
	for _, path := range paths {
		base := conv.Base(path)

		if base == conv.String() {
			continue
		}

		if base == "" || strings.Contains(base, conv.String()) {
			t.Errorf("Base(%q) = %q, want a single non-empty element", path, base)
		}
	}
}

func testCleanShape(t *testing.T, conv Convention, paths []string) {
	sep := conv.String()

	for _, path := range paths {
		clean := conv.Clean(path)
		n := conv.Leading(clean)

		if clean == "" {
			t.Errorf("Clean(%q) is empty", path)

			continue
		}

		if n == len(clean) || clean == "." {
			continue
		}

		for _, element := range strings.Split(clean[n:], sep) {
			if element == "" || element == "." {
				t.Errorf("Clean(%q) = %q contains element %q", path, clean, element)
			}
		}
	}
}

func testParentIsDir(t *testing.T, conv Convention, paths []string) {
	for _, path := range paths {
		if parent, dir := conv.Parent(path), conv.Dir(path); parent != dir {
			t.Errorf("Parent(%q) = %q, Dir = %q", path, parent, dir)
		}
	}
}

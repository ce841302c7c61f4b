// cmd/coysfeed/config_test.go
package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("COYSFEED_TEST_STR", "hello")
	t.Setenv("COYSFEED_TEST_INT", "42")
	t.Setenv("COYSFEED_TEST_BADINT", "not-a-number")
	t.Setenv("COYSFEED_TEST_BOOL", "true")
	t.Setenv("COYSFEED_TEST_LIST", "ange, postecoglou ,frank")

	if got := GetEnvString("COYSFEED_TEST_STR", "d"); got != "hello" {
		t.Errorf("GetEnvString = %q", got)
	}
	if got := GetEnvString("COYSFEED_TEST_UNSET", "d"); got != "d" {
		t.Errorf("GetEnvString default = %q", got)
	}
	if got := GetEnvInt("COYSFEED_TEST_INT", 7); got != 42 {
		t.Errorf("GetEnvInt = %d", got)
	}
	if got := GetEnvInt("COYSFEED_TEST_BADINT", 7); got != 7 {
		t.Errorf("GetEnvInt with junk value = %d, want default", got)
	}
	if got := GetEnvBool("COYSFEED_TEST_BOOL", false); !got {
		t.Error("GetEnvBool = false, want true")
	}
	want := []string{"ange", "postecoglou", "frank"}
	if got := GetEnvStringSlice("COYSFEED_TEST_LIST", nil); !reflect.DeepEqual(got, want) {
		t.Errorf("GetEnvStringSlice = %v, want %v", got, want)
	}
}

func TestLoadSourceList(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sources.yml")
	content := `rss:
  - name: BBC Sport
    url: https://feeds.bbci.co.uk/sport/football/teams/tottenham-hotspur/rss.xml
html:
  - name: Sky Sports
    url: https://www.skysports.com/tottenham-hotspur-news
    selector: .news-list__headline-link
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	list, err := LoadSourceList(path)
	if err != nil {
		t.Fatalf("LoadSourceList: %v", err)
	}
	if len(list.RSS) != 1 || list.RSS[0].Name != "BBC Sport" {
		t.Errorf("rss entries = %+v", list.RSS)
	}
	if len(list.HTML) != 1 || list.HTML[0].Selector != ".news-list__headline-link" {
		t.Errorf("html entries = %+v", list.HTML)
	}
}

func TestLoadSourceListMissingFile(t *testing.T) {
	if _, err := LoadSourceList(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Error("missing file should return an error")
	}
}

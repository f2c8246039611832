package wordlist

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestASCIILetters(t *testing.T) {
	for _, word := range []string{"hello", "Go"} {
		if !ASCIILetters(word) {
			t.Fatalf("expected %q to pass", word)
		}
	}
	for _, word := range []string{"", "résumé", "naïve", "don’t", "co-op", "x1"} {
		if ASCIILetters(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}

func TestLoadWords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	data := "alpha\n\n  beta gamma \nalpha\ncafé\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write words: %v", err)
	}

	words, err := LoadWords(path, nil)
	if err != nil {
		t.Fatalf("load words: %v", err)
	}
	want := []string{"alpha", "beta", "gamma", "café"}
	if !reflect.DeepEqual(words, want) {
		t.Fatalf("expected %v, got %v", want, words)
	}

	words, err = LoadWords(path, ASCIILetters)
	if err != nil {
		t.Fatalf("load filtered words: %v", err)
	}
	want = []string{"alpha", "beta", "gamma"}
	if !reflect.DeepEqual(words, want) {
		t.Fatalf("expected %v, got %v", want, words)
	}
}

func TestLoadWordsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("\n \n"), 0o644); err != nil {
		t.Fatalf("write words: %v", err)
	}
	if _, err := LoadWords(path, nil); err == nil {
		t.Fatalf("expected error for empty word list")
	}
}

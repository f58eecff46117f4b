package main

import (
	"embed"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path"

	"github.com/dgallion1/generics/internal/config"
	"github.com/dgallion1/generics/internal/textsrc"
	"github.com/dgallion1/generics/seq"
	"github.com/dgallion1/generics/span"
)

//go:embed samples
var samples embed.FS

type student struct {
	FirstName string
	LastName  string
	Grade     string
	Country   string
}

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.New(slog.NewJSONHandler(os.Stderr, nil)).Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := cfg.Logger(os.Stdout)

	if err := run(log); err != nil {
		log.Error("demo failed", "error", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	// Largest element.
	numbers := []int{34, 50, 25, 100, 65}
	n, err := seq.MaxOf(numbers)
	if err != nil {
		return err
	}
	log.Info("largest number", "input", numbers, "result", n)

	chars := []rune{'y', 'm', 'a', 'q'}
	c, err := seq.MaxOf(chars)
	if err != nil {
		return err
	}
	log.Info("largest char", "input", string(chars), "result", string(c))

	if _, err := seq.MaxOf([]int{}); errors.Is(err, seq.ErrEmptyInput) {
		log.Info("empty input rejected", "error", err)
	} else {
		return errors.New("empty input was not rejected")
	}

	// Borrowed spans.
	a, b := "abcd", "xyz"
	longer, side := span.Longer(a, b)
	log.Info("longer string", "a", a, "b", b, "result", longer, "side", side.String())
	log.Info("first word", "input", "hello world", "result", span.FirstWord("hello world"))

	// Student roster.
	s1 := student{"Nikofl", "Inno", "B", "Japan"}
	s2 := student{"James", "Leborn", "A", "America"}
	s3 := student{"Kiturl", "Deropmerl", "B", "Greek"}

	students := []student{s1, s2, s3}
	gradeB := seq.Filter(students, func(s student) bool { return s.Grade == "B" })
	log.Info("students with grade B", "count", len(gradeB), "students", gradeB)

	roster := []*student{&s1, &s2, &s3}
	seq.Each(roster, func(s *student) { s.Grade += "+" })
	seq.Each(roster, func(s *student) {
		log.Info("upgraded student", "first", s.FirstName, "last", s.LastName, "grade", s.Grade)
	})

	// Sample documents.
	entries, err := fs.ReadDir(samples, "samples")
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := summarize(log, path.Join("samples", e.Name())); err != nil {
			return err
		}
	}
	return nil
}

// summarize logs the first word of every paragraph in a sample and its
// longest paragraph.
func summarize(log *slog.Logger, name string) error {
	kind, err := textsrc.KindFor(name)
	if err != nil {
		return err
	}
	src, err := samples.ReadFile(name)
	if err != nil {
		return err
	}
	paras, err := textsrc.Extract(src, kind)
	if err != nil {
		return err
	}
	if len(paras) == 0 {
		log.Warn("sample has no paragraphs", "file", name)
		return nil
	}

	words := make([]string, 0, len(paras))
	longest := paras[0]
	for _, p := range paras {
		words = append(words, span.FirstWord(p))
		longest = span.LongerOf(longest, p)
	}
	log.Info("sample summarized",
		"file", name,
		"kind", kind.String(),
		"paragraphs", len(paras),
		"first_words", words,
		"longest", longest,
	)
	return nil
}

package store

import (
	"context"
	"errors"
	"strings"
	"testing"

	"codeinterview/internal/models"
)

func TestCreateRoomUsesLanguageTemplate(t *testing.T) {
	st := NewMemory()
	for _, lang := range []models.Language{
		models.LangJavaScript, models.LangPython, models.LangJava, models.LangCPP,
	} {
		room, err := st.CreateRoom(context.Background(), lang)
		if err != nil {
			t.Fatalf("create room (%s): %v", lang, err)
		}
		if room.Language != lang {
			t.Fatalf("expected language %s, got %s", lang, room.Language)
		}
		if room.Code != models.Template(lang) {
			t.Fatalf("expected %s template, got %q", lang, room.Code)
		}
		if room.CreatedAt.IsZero() {
			t.Fatalf("expected createdAt to be set")
		}
		if room.Task != "" || room.TaskTitle != "" {
			t.Fatalf("expected empty task fields, got %#v", room)
		}
	}
}

func TestCreateRoomRejectsUnknownLanguage(t *testing.T) {
	st := NewMemory()
	if _, err := st.CreateRoom(context.Background(), "cobol"); !errors.Is(err, ErrInvalidLanguage) {
		t.Fatalf("expected ErrInvalidLanguage, got %v", err)
	}
}

func TestCreateRoomIDsAreDistinct(t *testing.T) {
	st := NewMemory()
	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		room, err := st.CreateRoom(context.Background(), models.LangPython)
		if err != nil {
			t.Fatalf("create room: %v", err)
		}
		if len(room.ID) != idLength {
			t.Fatalf("expected %d-char id, got %q", idLength, room.ID)
		}
		for _, c := range room.ID {
			if !strings.ContainsRune(idAlphabet, c) {
				t.Fatalf("unexpected character %q in id %q", c, room.ID)
			}
		}
		if _, dup := seen[room.ID]; dup {
			t.Fatalf("duplicate room id %q", room.ID)
		}
		seen[room.ID] = struct{}{}
	}
}

func TestGetRoomNotFound(t *testing.T) {
	st := NewMemory()
	if _, err := st.GetRoom(context.Background(), "nope12"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSetCodeLastWriteWins(t *testing.T) {
	st := NewMemory()
	room, err := st.CreateRoom(context.Background(), models.LangPython)
	if err != nil {
		t.Fatalf("create room: %v", err)
	}

	if _, err := st.SetCode(context.Background(), room.ID, "X"); err != nil {
		t.Fatalf("set code: %v", err)
	}
	if _, err := st.SetCode(context.Background(), room.ID, "Y"); err != nil {
		t.Fatalf("set code: %v", err)
	}

	got, err := st.GetRoom(context.Background(), room.ID)
	if err != nil {
		t.Fatalf("get room: %v", err)
	}
	if got.Code != "Y" {
		t.Fatalf("expected last write to win, got %q", got.Code)
	}
}

func TestSetTaskPreservesTitleWhenOmitted(t *testing.T) {
	st := NewMemory()
	room, err := st.CreateRoom(context.Background(), models.LangJavaScript)
	if err != nil {
		t.Fatalf("create room: %v", err)
	}

	title := "Two Sum"
	if _, err := st.SetTask(context.Background(), room.ID, "T1", &title); err != nil {
		t.Fatalf("set task: %v", err)
	}

	got, err := st.SetTask(context.Background(), room.ID, "T2", nil)
	if err != nil {
		t.Fatalf("set task: %v", err)
	}
	if got.Task != "T2" || got.TaskTitle != "Two Sum" {
		t.Fatalf("expected title preserved, got %#v", got)
	}

	title2 := "Three Sum"
	got, err = st.SetTask(context.Background(), room.ID, "T3", &title2)
	if err != nil {
		t.Fatalf("set task: %v", err)
	}
	if got.Task != "T3" || got.TaskTitle != "Three Sum" {
		t.Fatalf("expected both updated, got %#v", got)
	}
}

func TestSetLanguageKeepsExistingCode(t *testing.T) {
	st := NewMemory()
	room, err := st.CreateRoom(context.Background(), models.LangPython)
	if err != nil {
		t.Fatalf("create room: %v", err)
	}
	if _, err := st.SetCode(context.Background(), room.ID, "print(1)"); err != nil {
		t.Fatalf("set code: %v", err)
	}

	got, err := st.SetLanguage(context.Background(), room.ID, models.LangJava)
	if err != nil {
		t.Fatalf("set language: %v", err)
	}
	if got.Language != models.LangJava {
		t.Fatalf("expected language java, got %s", got.Language)
	}
	if got.Code != "print(1)" {
		t.Fatalf("language switch must not touch code, got %q", got.Code)
	}

	if _, err := st.SetLanguage(context.Background(), room.ID, "brainfuck"); !errors.Is(err, ErrInvalidLanguage) {
		t.Fatalf("expected ErrInvalidLanguage, got %v", err)
	}
}

func TestMutatorsOnMissingRoom(t *testing.T) {
	st := NewMemory()
	ctx := context.Background()
	if _, err := st.SetCode(ctx, "ghost0", "x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("SetCode: expected ErrNotFound, got %v", err)
	}
	if _, err := st.SetTask(ctx, "ghost0", "t", nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("SetTask: expected ErrNotFound, got %v", err)
	}
	if _, err := st.SetLanguage(ctx, "ghost0", models.LangPython); !errors.Is(err, ErrNotFound) {
		t.Fatalf("SetLanguage: expected ErrNotFound, got %v", err)
	}
}

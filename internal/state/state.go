// Package state owns the four persisted collections: the command log, the
// brain-run history, the snippet library and the dictionary. All access
// goes through one RWMutex so readers always observe a consistent
// snapshot, never a partially-applied mutation. Persistence is injected
// as a blob store; loads fall back silently to compiled-in defaults and
// saves are best-effort.
package state

import (
	"encoding/json"
	"sync"
	"time"

	"nous/internal/domain"
	"nous/internal/ports"
)

// Collection keys used with the blob store.
const (
	CollectionCommands   = "commands"
	CollectionBrainRuns  = "brain_runs"
	CollectionSnippets   = "snippets"
	CollectionDictionary = "dictionary"
)

// Defaults holds the compiled-in fallbacks used when a collection is
// missing or unreadable.
type Defaults struct {
	Dictionary domain.Dictionary
	Snippets   []domain.Snippet
}

// State is the single owner of the mutable collections.
type State struct {
	mu       sync.RWMutex
	store    ports.BlobStore
	log      ports.Logger
	defaults Defaults

	commands   []domain.Command
	runs       []domain.BrainRun
	snippets   []domain.Snippet
	dictionary domain.Dictionary

	generation uint64
	onChange   func()
}

// New loads every collection from the store, falling back to defaults.
func New(store ports.BlobStore, defaults Defaults, log ports.Logger) *State {
	s := &State{store: store, log: log, defaults: defaults}
	s.commands = loadCollection[[]domain.Command](s, CollectionCommands, nil)
	s.runs = loadCollection[[]domain.BrainRun](s, CollectionBrainRuns, nil)
	s.snippets = loadCollection[[]domain.Snippet](s, CollectionSnippets, defaults.Snippets)
	s.dictionary = loadCollection[domain.Dictionary](s, CollectionDictionary, defaults.Dictionary)
	if len(s.runs) > domain.BrainRunCapacity {
		s.runs = s.runs[:domain.BrainRunCapacity]
	}
	return s
}

func loadCollection[T any](s *State, collection string, fallback T) T {
	payload, ok := s.store.Load(collection)
	if !ok {
		return fallback
	}
	var value T
	if err := json.Unmarshal(payload, &value); err != nil {
		s.log.Warn("malformed collection, using default", map[string]interface{}{
			"collection": collection,
			"error":      err.Error(),
		})
		return fallback
	}
	return value
}

// SetOnChange registers the hook fired after every mutation. The hook runs
// outside the lock.
func (s *State) SetOnChange(hook func()) {
	s.mu.Lock()
	s.onChange = hook
	s.mu.Unlock()
}

// Generation counts mutations; it changes whenever any collection does.
func (s *State) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// View is a consistent read snapshot of everything the interpretation
// pipeline needs.
type View struct {
	Commands   []domain.Command
	Snippets   []domain.Snippet
	Dictionary domain.Dictionary
	Generation uint64
}

// Snapshot returns a consistent copy of commands, snippets and dictionary.
func (s *State) Snapshot() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return View{
		Commands:   copySlice(s.commands),
		Snippets:   copySlice(s.snippets),
		Dictionary: s.dictionary,
		Generation: s.generation,
	}
}

// Commands returns a copy of the command log in append order.
func (s *State) Commands() []domain.Command {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.commands)
}

// Snippets returns a copy of the snippet library in library order.
func (s *State) Snippets() []domain.Snippet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.snippets)
}

// BrainRuns returns a copy of the run history, most recent first.
func (s *State) BrainRuns() []domain.BrainRun {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.runs)
}

// Dictionary returns the current dictionary.
func (s *State) Dictionary() domain.Dictionary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dictionary
}

// AppendCommand records a new command at the end of the log.
func (s *State) AppendCommand(cmd domain.Command) {
	s.mutate(func() {
		s.commands = append(s.commands, cmd)
		s.persist(CollectionCommands, s.commands)
	})
}

// DeleteCommand removes a command by id, reporting whether it existed.
func (s *State) DeleteCommand(id string) bool {
	deleted := false
	s.mutate(func() {
		kept := s.commands[:0]
		for _, cmd := range s.commands {
			if cmd.ID == id {
				deleted = true
				continue
			}
			kept = append(kept, cmd)
		}
		s.commands = kept
		if deleted {
			s.persist(CollectionCommands, s.commands)
		}
	})
	return deleted
}

// ClearCommands drops the whole command log.
func (s *State) ClearCommands() {
	s.mutate(func() {
		s.commands = nil
		s.persist(CollectionCommands, s.commands)
	})
}

// AddSnippet appends a snippet to the library.
func (s *State) AddSnippet(snippet domain.Snippet) {
	s.mutate(func() {
		s.snippets = append(s.snippets, snippet)
		s.persist(CollectionSnippets, s.snippets)
	})
}

// SetDictionary replaces the dictionary wholesale.
func (s *State) SetDictionary(dict domain.Dictionary) {
	s.mutate(func() {
		s.dictionary = dict
		s.persist(CollectionDictionary, s.dictionary)
	})
}

// ResetDictionary restores the compiled-in default dictionary.
func (s *State) ResetDictionary() {
	s.SetDictionary(s.defaults.Dictionary)
}

// AddSynonym merges terms into the synonym entry for word, creating the
// entry at the end of the declaration order when absent.
func (s *State) AddSynonym(word string, terms []string) {
	s.mutate(func() {
		s.dictionary.Synonyms = mergeEntry(s.dictionary.Synonyms, word, terms)
		s.persist(CollectionDictionary, s.dictionary)
	})
}

// AddAntonym merges terms into the antonym entry for word.
func (s *State) AddAntonym(word string, terms []string) {
	s.mutate(func() {
		s.dictionary.Antonyms = mergeEntry(s.dictionary.Antonyms, word, terms)
		s.persist(CollectionDictionary, s.dictionary)
	})
}

// AddStopword appends a stopword if not already present.
func (s *State) AddStopword(word string) {
	s.mutate(func() {
		for _, existing := range s.dictionary.Stopwords {
			if existing == word {
				return
			}
		}
		s.dictionary.Stopwords = append(s.dictionary.Stopwords, word)
		s.persist(CollectionDictionary, s.dictionary)
	})
}

// RemoveStopword drops a stopword, reporting whether it was present.
func (s *State) RemoveStopword(word string) bool {
	removed := false
	s.mutate(func() {
		kept := s.dictionary.Stopwords[:0]
		for _, existing := range s.dictionary.Stopwords {
			if existing == word {
				removed = true
				continue
			}
			kept = append(kept, existing)
		}
		s.dictionary.Stopwords = kept
		if removed {
			s.persist(CollectionDictionary, s.dictionary)
		}
	})
	return removed
}

// PushBrainRun records a run at the front of the history and truncates to
// the retention capacity, oldest evicted first.
func (s *State) PushBrainRun(run domain.BrainRun) {
	s.mutate(func() {
		s.runs = append([]domain.BrainRun{run}, s.runs...)
		if len(s.runs) > domain.BrainRunCapacity {
			s.runs = s.runs[:domain.BrainRunCapacity]
		}
		s.persist(CollectionBrainRuns, s.runs)
	})
}

// Export bundles all four collections into one serializable document.
func (s *State) Export() domain.ExportDocument {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.ExportDocument{
		GeneratedAt: time.Now(),
		Commands:    copySlice(s.commands),
		BrainRuns:   copySlice(s.runs),
		Snippets:    copySlice(s.snippets),
		Dictionary:  s.dictionary,
	}
}

func (s *State) mutate(apply func()) {
	s.mu.Lock()
	apply()
	s.generation++
	hook := s.onChange
	s.mu.Unlock()
	if hook != nil {
		hook()
	}
}

// persist is best-effort; failures are logged and never propagated.
func (s *State) persist(collection string, value interface{}) {
	payload, err := json.Marshal(value)
	if err != nil {
		s.log.Warn("marshal collection failed", map[string]interface{}{
			"collection": collection,
			"error":      err.Error(),
		})
		return
	}
	if err := s.store.Save(collection, payload); err != nil {
		s.log.Warn("save collection failed", map[string]interface{}{
			"collection": collection,
			"error":      err.Error(),
		})
	}
}

func mergeEntry(entries []domain.MappingEntry, word string, terms []string) []domain.MappingEntry {
	for i, entry := range entries {
		if entry.Word != word {
			continue
		}
		for _, term := range terms {
			if !contains(entry.Terms, term) {
				entries[i].Terms = append(entries[i].Terms, term)
			}
		}
		return entries
	}
	return append(entries, domain.MappingEntry{Word: word, Terms: terms})
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}

func copySlice[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

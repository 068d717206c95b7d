// Package gitstore provides a Git plumbing-based implementation of TaskRepository.
package gitstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/infra/textstore"
)

// Store implements domain.TaskRepository using Git plumbing.
//
// The whole list is stored as one blob in the text format and
// referenced directly by refs/<namespace>/tasks. It is never part of
// a commit, so it does not show up in the working tree or history.
type Store struct {
	repo      *git.Repository
	namespace string
	malformed domain.MalformedPolicy
}

// New opens the repository at repoPath (searching parent directories).
func New(repoPath, namespace string, malformed domain.MalformedPolicy) (*Store, error) {
	repo, err := git.PlainOpenWithOptions(repoPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%s: %w", repoPath, domain.ErrNotGitRepository)
		}
		return nil, fmt.Errorf("open git repository: %w", err)
	}
	return NewWithRepo(repo, namespace, malformed), nil
}

// NewWithRepo creates a new Store with an existing repository instance.
func NewWithRepo(repo *git.Repository, namespace string, malformed domain.MalformedPolicy) *Store {
	if namespace == "" {
		namespace = domain.DefaultGitNamespace
	}
	return &Store{
		repo:      repo,
		namespace: namespace,
		malformed: malformed,
	}
}

// refName returns the ref that points at the task blob.
func (s *Store) refName() plumbing.ReferenceName {
	return plumbing.ReferenceName(domain.TaskRefName(s.namespace))
}

// Load reads the task blob. A missing ref is an empty list.
func (s *Store) Load(_ context.Context) ([]domain.Task, error) {
	ref, err := s.repo.Reference(s.refName(), true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return []domain.Task{}, nil
		}
		return nil, fmt.Errorf("get tasks ref: %w", err)
	}

	data, err := s.readBlob(ref.Hash())
	if err != nil {
		return nil, fmt.Errorf("read tasks: %w", err)
	}

	tasks, err := textstore.Decode(bytes.NewReader(data), s.malformed)
	if err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	return tasks, nil
}

// Save writes a new blob and moves the ref to it.
func (s *Store) Save(_ context.Context, tasks []domain.Task) error {
	hash, err := s.writeBlob([]byte(textstore.Encode(tasks)))
	if err != nil {
		return err
	}

	ref := plumbing.NewHashReference(s.refName(), hash)
	if err := s.repo.Storer.SetReference(ref); err != nil {
		return fmt.Errorf("set tasks ref: %w", err)
	}

	return nil
}

func (s *Store) writeBlob(data []byte) (plumbing.Hash, error) {
	obj := s.repo.Storer.NewEncodedObject()
	obj.SetType(plumbing.BlobObject)
	obj.SetSize(int64(len(data)))

	writer, err := obj.Writer()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("create blob writer: %w", err)
	}

	if _, writeErr := writer.Write(data); writeErr != nil {
		_ = writer.Close()
		return plumbing.ZeroHash, fmt.Errorf("write blob: %w", writeErr)
	}
	_ = writer.Close()

	hash, err := s.repo.Storer.SetEncodedObject(obj)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("store blob: %w", err)
	}

	return hash, nil
}

func (s *Store) readBlob(hash plumbing.Hash) ([]byte, error) {
	blob, err := s.repo.BlobObject(hash)
	if err != nil {
		return nil, fmt.Errorf("get blob: %w", err)
	}

	reader, err := blob.Reader()
	if err != nil {
		return nil, fmt.Errorf("read blob: %w", err)
	}
	defer func() { _ = reader.Close() }()

	return io.ReadAll(reader)
}

// Ensure Store implements TaskRepository.
var _ domain.TaskRepository = (*Store)(nil)

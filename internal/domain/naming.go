package domain

import "path/filepath"

// TaskRefName returns the git reference that holds the task list for a namespace.
func TaskRefName(namespace string) string {
	return "refs/" + namespace + "/tasks"
}

// TempPath returns the sibling temporary path used for atomic rewrites of path.
func TempPath(path string) string {
	dir, name := filepath.Split(path)
	return filepath.Join(dir, "."+name+".tmp")
}

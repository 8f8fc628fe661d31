package manifest

import (
	git "github.com/go-git/go-git/v5"
)

// HeadSHA returns the HEAD commit hash of the repository containing
// path, searching parent directories for the .git directory. Returns
// ok=false when path is not inside a repository or HEAD is unborn.
func HeadSHA(path string) (string, bool) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", false
	}
	head, err := repo.Head()
	if err != nil {
		return "", false
	}
	return head.Hash().String(), true
}

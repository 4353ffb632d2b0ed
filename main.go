// repo-stats reports the top contributors and the open, closed and old
// pull requests and issues of a GitHub repository.
//
// Usage:
//
//	repo-stats https://github.com/<owner>/<repo> [-s start] [-e end] [-b branch] [-l login] [-p password]
package main

import "github.com/naka-gawa/repo-stats/cmd"

func main() {
	cmd.Execute()
}

package verctl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// PromptFunc asks which bump to apply to the manifest at path. It is called
// only when neither an explicit bump nor auto mode is configured.
type PromptFunc func(path string) (BumpKind, error)

// LinePrompt returns a PromptFunc that writes a question to out and reads one
// line from in per call. The reader is shared between calls, so answers piped
// for several workspace members are consumed one line each.
func LinePrompt(in io.Reader, out io.Writer) PromptFunc {
	br := bufio.NewReader(in)
	return func(path string) (BumpKind, error) {
		fmt.Fprintf(out, "Increment version for %s? (major/minor/patch/none) [patch]: ", path)
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return BumpPatch, fmt.Errorf("reading answer: %w", err)
		}
		return BumpKindFromAnswer(line), nil
	}
}

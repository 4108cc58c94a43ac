package pathway

import (
	"fmt"
	"strings"
)

// validateSpecs performs all structural checks on a node table.
// Returns a combined error describing all problems found, or nil if valid.
func validateSpecs(start string, specs []NodeSpec) error {
	var errs []string

	keys := make(map[string]bool, len(specs))
	for _, s := range specs {
		if s.Key == "" {
			errs = append(errs, "node with empty key")
		}
		if keys[s.Key] {
			errs = append(errs, fmt.Sprintf("duplicate node key: %q", s.Key))
		}
		keys[s.Key] = true
	}

	if !keys[start] {
		errs = append(errs, fmt.Sprintf("start node %q does not exist", start))
	}

	for _, s := range specs {
		if len(s.Options) == 0 {
			errs = append(errs, fmt.Sprintf("node %q has no options", s.Key))
		}
		for i, o := range s.Options {
			if o.Text == "" {
				errs = append(errs, fmt.Sprintf("node %q option %d has no text", s.Key, i))
			}
			if o.Terminal() && o.Diagnosis == "" {
				errs = append(errs, fmt.Sprintf("node %q option %q ends the walk without a diagnosis", s.Key, o.Text))
			}
			if !o.Terminal() && !keys[o.Next] {
				errs = append(errs, fmt.Sprintf("node %q option %q references nonexistent node %q", s.Key, o.Text, o.Next))
			}
		}
	}

	// Cycle check (Kahn's algorithm) over resolvable edges.
	inDegree := make(map[string]int, len(specs))
	adj := make(map[string][]string)
	for _, s := range specs {
		if _, ok := inDegree[s.Key]; !ok {
			inDegree[s.Key] = 0
		}
		for _, o := range s.Options {
			if o.Terminal() || !keys[o.Next] {
				continue
			}
			adj[s.Key] = append(adj[s.Key], o.Next)
			inDegree[o.Next]++
		}
	}
	var queue []string
	for _, s := range specs {
		if inDegree[s.Key] == 0 {
			queue = append(queue, s.Key)
		}
	}
	visited := 0
	for len(queue) > 0 {
		k := queue[0]
		queue = queue[1:]
		visited++
		for _, next := range adj[k] {
			inDegree[next]--
			if inDegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}
	if visited < len(inDegree) {
		var cycle []string
		for _, s := range specs {
			if inDegree[s.Key] > 0 {
				cycle = append(cycle, s.Key)
			}
		}
		errs = append(errs, fmt.Sprintf("cycle detected involving nodes: %s", strings.Join(cycle, ", ")))
	}

	// Reachability from start.
	if keys[start] {
		reached := map[string]bool{start: true}
		stack := []string{start}
		for len(stack) > 0 {
			k := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, next := range adj[k] {
				if !reached[next] {
					reached[next] = true
					stack = append(stack, next)
				}
			}
		}
		for _, s := range specs {
			if !reached[s.Key] {
				errs = append(errs, fmt.Sprintf("node %q is unreachable from %q", s.Key, start))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("pathway validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

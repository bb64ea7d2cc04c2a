package graphview

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// ParseDIMACS reads a DIMACS .col file:
//
//	"c ..."      comment lines, ignored
//	"p edge N M" sets n = N (M, the claimed edge count, is not validated
//	             against the actual edge count — permissive by design)
//	"e U V"      edge between 1-indexed vertices U, V; stored as (U-1, V-1)
//	blank lines  ignored
//
// Decoding is permissive: invalid UTF-8 bytes are replaced rather than
// rejected (mirroring the original Python parser's
// content.decode(errors="replace")). Returns ErrNoVertices wrapped under
// ErrInvalidInput if "p" never appears or N == 0.
func ParseDIMACS(r io.Reader) (*Graph, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	clean := strings.ToValidUTF8(string(raw), "�")

	n := 0
	adj := make(map[int]map[int]struct{})

	sc := bufio.NewScanner(strings.NewReader(clean))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		switch line[0] {
		case 'c':
			continue
		case 'p':
			parts := strings.Fields(line)
			if len(parts) >= 3 {
				if v, perr := strconv.Atoi(parts[2]); perr == nil {
					n = v
				}
			}
		case 'e':
			parts := strings.Fields(line)
			if len(parts) >= 3 {
				u, uerr := strconv.Atoi(parts[1])
				v, verr := strconv.Atoi(parts[2])
				if uerr == nil && verr == nil {
					u--
					v--
					addEdge(adj, u, v)
					addEdge(adj, v, u)
				}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if n == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, ErrNoVertices)
	}

	adjFlat, rowStart, deg := toCSR(n, adj)

	return NewFromCSR(n, adjFlat, rowStart, deg)
}

func addEdge(adj map[int]map[int]struct{}, u, v int) {
	if adj[u] == nil {
		adj[u] = make(map[int]struct{})
	}
	adj[u][v] = struct{}{}
}

// toCSR flattens a per-vertex neighbor-set map into sorted CSR arrays.
func toCSR(n int, adj map[int]map[int]struct{}) (adjFlat, rowStart, deg []int) {
	rowStart = make([]int, n)
	deg = make([]int, n)
	neighbors := make([][]int, n)

	for v := 0; v < n; v++ {
		set := adj[v]
		row := make([]int, 0, len(set))
		for u := range set {
			if u >= 0 && u < n {
				row = append(row, u)
			}
		}
		sort.Ints(row)
		neighbors[v] = row
		deg[v] = len(row)
	}

	offset := 0
	for v := 0; v < n; v++ {
		rowStart[v] = offset
		offset += deg[v]
	}
	adjFlat = make([]int, 0, offset)
	for v := 0; v < n; v++ {
		adjFlat = append(adjFlat, neighbors[v]...)
	}

	return adjFlat, rowStart, deg
}

package levenshtein

import "math"

// opKind identifies the direction of a backtrace step.
type opKind uint8

const (
	opMatch opKind = iota
	opSubstitute
	opDelete
	opInsert
)

// editOp is a maximal run of same-direction edit steps. Insert, delete and
// match runs carry a run length; a substitution is always one rune for one
// rune.
type editOp struct {
	kind opKind
	lenA int
	lenB int
}

// backtrace walks the matrix from (len(a), len(b)) back to (0,0) and returns
// the edit operations in original (left-to-right) order. A no-cost diagonal
// step is taken whenever the aligned runes match; otherwise ties are broken
// in the order substitution, deletion, insertion. Insert/delete runs stop at
// any cell where a diagonal match becomes available.
func backtrace(m matrix, a, b []rune) []editOp {
	var ops []editOp
	i, j := len(a), len(b)

	for i > 0 && j > 0 {
		if a[i-1] == b[j-1] {
			n := 0
			for i > 0 && j > 0 && a[i-1] == b[j-1] {
				i--
				j--
				n++
			}
			ops = append(ops, editOp{kind: opMatch, lenA: n, lenB: n})
			continue
		}
		switch cur := m[i][j]; {
		case cur == m[i-1][j-1]+1:
			ops = append(ops, editOp{kind: opSubstitute, lenA: 1, lenB: 1})
			i--
			j--
		case cur == m[i-1][j]+1:
			n := 0
			for i > 0 && m[i][j] == m[i-1][j]+1 && a[i-1] != b[j-1] {
				i--
				n++
			}
			ops = append(ops, editOp{kind: opDelete, lenA: n})
		default:
			n := 0
			for j > 0 && m[i][j] == m[i][j-1]+1 && a[i-1] != b[j-1] {
				j--
				n++
			}
			ops = append(ops, editOp{kind: opInsert, lenB: n})
		}
	}
	if i > 0 {
		ops = append(ops, editOp{kind: opDelete, lenA: i})
	}
	if j > 0 {
		ops = append(ops, editOp{kind: opInsert, lenB: j})
	}
	reverseOps(ops)
	return ops
}

func reverseOps(ops []editOp) {
	for l, r := 0, len(ops)-1; l < r; l, r = l+1, r-1 {
		ops[l], ops[r] = ops[r], ops[l]
	}
}

// weightedSimilarityFromMatrix derives the run-length weighted similarity
// from an already computed matrix. Match runs are cost-neutral.
func weightedSimilarityFromMatrix(m matrix, a, b []rune) float64 {
	maxLen := max(len(a), len(b))
	if maxLen == 0 {
		return 0
	}

	var cost float64
	for _, op := range backtrace(m, a, b) {
		switch op.kind {
		case opInsert:
			cost += math.Log1p(float64(op.lenB))
		case opDelete:
			cost += math.Log1p(float64(op.lenA))
		case opSubstitute:
			cost += math.Log1p(float64(op.lenA)) + math.Log1p(float64(op.lenB))
		case opMatch:
		}
	}
	return (float64(maxLen) - cost) / float64(maxLen)
}

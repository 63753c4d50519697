// Package features ranks the weights of a linear branch-and-bound policy by
// feature, grouped by search depth and branching direction.
package features

import (
	"errors"
	"fmt"
)

// Kind selects the policy whose feature layout a model uses.
type Kind string

const (
	// KindSearch is the node selection policy.
	KindSearch Kind = "search"
	// KindPrune is the node pruning policy.
	KindPrune Kind = "prune"
)

// ErrInvalidKind is returned for a policy kind other than search or prune.
var ErrInvalidKind = errors.New("invalid feature type")

var featureNames = map[Kind][]string{
	KindSearch: {
		"SCIP_FEATNODESEL_LOWERBOUND",
		"SCIP_FEATNODESEL_ESTIMATE",
		"SCIP_FEATNODESEL_TYPE_SIBLING",
		"SCIP_FEATNODESEL_TYPE_CHILD",
		"SCIP_FEATNODESEL_TYPE_LEAF",
		"SCIP_FEATNODESEL_BRANCHVAR_BOUNDLPDIFF",
		"SCIP_FEATNODESEL_BRANCHVAR_ROOTLPDIFF",
		"SCIP_FEATNODESEL_BRANCHVAR_PRIO_UP",
		"SCIP_FEATNODESEL_BRANCHVAR_PRIO_DOWN",
		"SCIP_FEATNODESEL_BRANCHVAR_PSEUDOCOST",
		"SCIP_FEATNODESEL_BRANCHVAR_INF",
		"SCIP_FEATNODESEL_RELATIVEBOUND",
		"SCIP_FEATNODESEL_GLOBALUPPERBOUND",
		"SCIP_FEATNODESEL_GAP",
		"SCIP_FEATNODESEL_GAPINF",
		"SCIP_FEATNODESEL_GLOBALUPPERBOUNDINF",
		"SCIP_FEATNODESEL_PLUNGEDEPTH",
		"SCIP_FEATNODESEL_RELATIVEDEPTH",
	},
	KindPrune: {
		"SCIP_FEATNODEPRU_GLOBALLOWERBOUND",
		"SCIP_FEATNODEPRU_GLOBALUPPERBOUND",
		"SCIP_FEATNODEPRU_GAP",
		"SCIP_FEATNODEPRU_NSOLUTION",
		"SCIP_FEATNODEPRU_PLUNGEDEPTH",
		"SCIP_FEATNODEPRU_RELATIVEDEPTH",
		"SCIP_FEATNODEPRU_RELATIVEBOUND",
		"SCIP_FEATNODEPRU_RELATIVEESTIMATE",
		"SCIP_FEATNODEPRU_GAPINF",
		"SCIP_FEATNODEPRU_GLOBALUPPERBOUNDINF",
		"SCIP_FEATNODEPRU_BRANCHVAR_BOUNDLPDIFF",
		"SCIP_FEATNODEPRU_BRANCHVAR_ROOTLPDIFF",
		"SCIP_FEATNODEPRU_BRANCHVAR_PRIO_UP",
		"SCIP_FEATNODEPRU_BRANCHVAR_PRIO_DOWN",
		"SCIP_FEATNODEPRU_BRANCHVAR_PSEUDOCOST",
		"SCIP_FEATNODEPRU_BRANCHVAR_INF",
	},
}

// ParseKind validates a policy kind name.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := featureNames[k]; !ok {
		return "", fmt.Errorf("%w: %q (want %s or %s)", ErrInvalidKind, s, KindSearch, KindPrune)
	}
	return k, nil
}

// Size is the number of features per direction.
func (k Kind) Size() int {
	return len(featureNames[k])
}

// Name returns the symbolic name of feature id.
func (k Kind) Name(id int) string {
	names := featureNames[k]
	if id < 0 || id >= len(names) {
		return fmt.Sprintf("FEATURE_%d", id)
	}
	return names[id]
}

package avl

// The balancing discipline is the classic height-balanced scheme:
// sibling heights differ by at most maxSkew at every node, which keeps
// the height of an n-entry tree below 2*log2(n)+O(1). balance repairs
// the skew introduced by a single insertion or removal; join repairs
// arbitrary skew and is the workhorse for Split, Union, and friends.

const maxSkew = 2

func node[K, V any](left *Tree[K, V], key K, val V, right *Tree[K, V]) *Tree[K, V] {
	return &Tree[K, V]{
		key:    key,
		val:    val,
		left:   left,
		right:  right,
		height: max(left.Height(), right.Height()) + 1,
		size:   left.Len() + right.Len() + 1,
	}
}

// balance is node for subtrees whose heights may differ by maxSkew+1,
// as happens after one insertion into or one removal from a balanced
// subtree. A single or double rotation restores the invariant.
func balance[K, V any](left *Tree[K, V], key K, val V, right *Tree[K, V]) *Tree[K, V] {
	hl, hr := left.Height(), right.Height()
	switch {
	case hl > hr+maxSkew:
		if left.left.Height() >= left.right.Height() {
			return node(left.left, left.key, left.val,
				node(left.right, key, val, right))
		}
		lr := left.right
		return node(
			node(left.left, left.key, left.val, lr.left),
			lr.key, lr.val,
			node(lr.right, key, val, right))
	case hr > hl+maxSkew:
		if right.right.Height() >= right.left.Height() {
			return node(
				node(left, key, val, right.left),
				right.key, right.val, right.right)
		}
		rl := right.left
		return node(
			node(left, key, val, rl.left),
			rl.key, rl.val,
			node(rl.right, right.key, right.val, right.right))
	default:
		return node(left, key, val, right)
	}
}

// join builds a balanced tree from two balanced trees of arbitrary
// heights and a pivot entry, where every key in left is below the
// pivot and every key in right is above it. It descends the taller
// side until the heights are close enough for balance to finish.
//
// Complexity: O(|left.Height() - right.Height()|)
func join[K, V any](left *Tree[K, V], key K, val V, right *Tree[K, V]) *Tree[K, V] {
	switch {
	case left == nil:
		return right.insertMin(key, val)
	case right == nil:
		return left.insertMax(key, val)
	case left.height > right.height+maxSkew:
		return balance(left.left, left.key, left.val,
			join(left.right, key, val, right))
	case right.height > left.height+maxSkew:
		return balance(join(left, key, val, right.left),
			right.key, right.val, right.right)
	default:
		return node(left, key, val, right)
	}
}

// join2 is join without a pivot: the successor of left's largest key
// is pulled out of right to serve as one.
func join2[K, V any](left, right *Tree[K, V]) *Tree[K, V] {
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}
	k, v, _ := right.Min()
	return join(left, k, v, right.removeMin())
}

// splice is join2 for siblings of a removed node, whose heights are
// already within maxSkew+1 of each other.
func splice[K, V any](left, right *Tree[K, V]) *Tree[K, V] {
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}
	k, v, _ := right.Min()
	return balance(left, k, v, right.removeMin())
}

func (t *Tree[K, V]) insertMin(key K, val V) *Tree[K, V] {
	if t == nil {
		return node[K, V](nil, key, val, nil)
	}
	return balance(t.left.insertMin(key, val), t.key, t.val, t.right)
}

func (t *Tree[K, V]) insertMax(key K, val V) *Tree[K, V] {
	if t == nil {
		return node[K, V](nil, key, val, nil)
	}
	return balance(t.left, t.key, t.val, t.right.insertMax(key, val))
}

func (t *Tree[K, V]) removeMin() *Tree[K, V] {
	if t.left == nil {
		return t.right
	}
	return balance(t.left.removeMin(), t.key, t.val, t.right)
}

package orm

import "github.com/iov-one/nftoken"

// ConsumeIterator will read all remaining data into an
// array and close the iterator
func ConsumeIterator(itr nftoken.Iterator) []nftoken.Model {
	defer itr.Close()

	res := []nftoken.Model{}
	for ; itr.Valid(); itr.Next() {
		mod := nftoken.Model{
			Key:   itr.Key(),
			Value: itr.Value(),
		}
		res = append(res, mod)
	}
	return res
}

// queryPrefix returns all model pairs whose key begins
// with the given prefix
func queryPrefix(db nftoken.ReadOnlyKVStore, prefix []byte) []nftoken.Model {
	itr := db.Iterator(prefixRange(prefix))
	return ConsumeIterator(itr)
}

// prefixRange turns a prefix into (start, end) to create
// and iterator
func prefixRange(prefix []byte) ([]byte, []byte) {
	// special case: no prefix is whole range
	if len(prefix) == 0 {
		return nil, nil
	}

	// copy the prefix and update last byte
	end := make([]byte, len(prefix))
	copy(end, prefix)
	l := len(end) - 1
	end[l]++

	// wait, what if that overflowed the last byte?
	for end[l] == 0 && l > 0 {
		l--
		end[l]++
	}

	// okay, funny guy, you gave us FFF, no end to this range...
	if l == 0 && end[0] == 0 {
		end = nil
	}
	return prefix, end
}

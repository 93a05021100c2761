// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/bitmark-inc/avltree/avl"
)

func TestListShort(t *testing.T) {
	addList := []string{
		"4201", "1254", "8608", "1639", "8950",
		"6740",
	}
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			doList(t, b.strings, addList)
			doTraverse(t, b.strings(), addList)
			doGet(t, b.strings(), addList)
		})
	}
}

// to make sure that lots of duplicates do not increment the node
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []string{
		"1720", "0506", "8382", "6774", "1247",
		"1250", "1264", "1258", "1255", "2247",
		"2004", "2194", "2644", "2169", "8133",
		"2136", "9651", "4079", "1042", "3579",
		"3630", "1427", "5843", "9549", "5433",
		"1274", "9034", "4724", "6179", "5072",
		"9272", "4030", "4205", "3363", "8582",
		"1720", "0506", "8382", "6774", "1042",

		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
	}
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			doList(t, b.strings, addList)
			doTraverse(t, b.strings(), addList)
			doGet(t, b.strings(), addList)
		})
	}
}

func TestListLong(t *testing.T) {
	addList := []string{
		"8133", "2136", "9651", "4079", "1042",
		"3579", "3630", "1427", "5843", "9549",
		"5433", "1274", "9034", "4724", "6179",
		"5072", "9272", "4030", "4205", "3363",
		"8582", "1720", "0506", "8382", "6774",
		"3088", "2329", "9039", "6703", "1027",
		"7297", "6063", "4156", "1005", "0982",
		"3065", "2553", "0795", "8426", "2377",
		"0877", "9085", "5918", "2581", "7797",
		"3028", "5880", "3061", "5212", "6539",
		"1320", "3581", "3334", "4348", "2934",
		"8342", "8814", "8736", "1353", "3082",
		"9620", "0056", "5063", "1245", "7066",
		"7435", "2999", "7803", "1303", "1697",
		"0017", "4314", "9926", "7587", "2531",
		"8123", "5693", "7495", "9975", "5465",
		"4342", "7958", "7138", "9382", "0672",
		"5402", "0204", "2397", "2712", "0938",
		"9610", "3611", "2140", "4289", "9271",
		"4786", "4145", "1066", "4366", "6716",
		"8579", "1012", "5935", "8278", "5761",
		"1871", "6257", "2649", "8643", "1239",
		"3416", "6146", "7127", "9517", "5788",
		"9025", "6880", "9064", "4849", "4503",
		"4898", "6815", "8811", "6745", "6907",
		"7503", "9869", "5491", "9940", "5955",
		"3764", "3254", "8048", "5339", "2406",
		"3137", "0251", "0486", "4202", "1844",
		"1741", "7154", "4286", "5160", "9472",
		"2998", "1935", "4758", "6478", "9572",
		"9254", "6848", "3126", "1848", "7692",
		"2791", "1504", "3469", "9701", "5077",
		"7928", "7978", "5383", "4319", "8197",
		"9227", "1166", "4216", "0866", "1791",
		"5395", "4310", "4452", "6140", "1494",
		"8859", "3394", "5507", "7295", "5408",
		"7789", "8237", "6990", "6882", "8243",
		"8894", "4352", "6727", "7019", "3126",
		"3102", "2948", "8242", "5027", "8892",
		"3492", "1323", "1101", "4526", "5177",
		"6175", "6664", "2742", "6094", "9877",
		"2534", "2105", "6588", "9982", "3696",
		"3480", "2244", "7487", "2844", "3199",
		"5829", "6952", "6915", "0905", "7615",
	}
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			doList(t, b.strings, addList)
			doTraverse(t, b.strings(), addList)
			doGet(t, b.strings(), addList)
		})
	}
}

// delete a growing prefix of the list, checking the tree after each
// phase, then delete the remainder
func doList(t *testing.T, makeTree func() avl.Set[string], addList []string) {

	for i := 0; i < len(addList)+1; i += 1 {

		alreadyDeleted := make(map[string]struct{})

		tree := makeTree()
		for _, key := range addList {
			tree.Insert(key)
		}

		if err := tree.Check(); nil != err {
			depth := tree.Print(logWriter{t})
			t.Logf("depth: %d", depth)
			t.Fatalf("add: inconsistent tree: %s", err)
		}

	delete_items:
		for _, key := range addList[:i] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_items
			}
			alreadyDeleted[key] = struct{}{}
			if !tree.Remove(key) {
				t.Fatalf("delete: %q not found", key)
			}
		}

		if err := tree.Check(); nil != err {
			depth := tree.Print(logWriter{t})
			t.Logf("depth: %d", depth)
			t.Fatalf("delete: inconsistent tree: %s", err)
		}

	delete_remainder:
		for _, key := range addList[i:] {
			if _, ok := alreadyDeleted[key]; ok {
				if tree.Remove(key) {
					t.Fatalf("delete: %q removed twice", key)
				}
				continue delete_remainder
			}
			alreadyDeleted[key] = struct{}{}
			if !tree.Remove(key) {
				t.Fatalf("delete: %q not found", key)
			}
		}
		if !tree.IsEmpty() {
			depth := tree.Print(logWriter{t})
			t.Logf("depth: %d", depth)
			t.Fatal("remainder: remaining nodes")
		}
		if 0 != tree.Len() || 0 != tree.Height() {
			t.Fatalf("empty tree: len: %d  height: %d", tree.Len(), tree.Height())
		}
		if s := tree.Stats(); !s.Balanced() {
			t.Fatalf("allocated: %d  freed: %d", s.Allocated(), s.Freed())
		}
	}
}

// traverse the tree forwards and backwards to check iterators
func doTraverse(t *testing.T, tree avl.Set[string], addList []string) {

	unique := make(map[string]struct{})
	for _, key := range addList {
		unique[key] = struct{}{}
		tree.Insert(key)
	}

	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)

	if first, ok := tree.First(); !ok || first != expected[0] {
		t.Fatalf("first: actual: %q  expected: %q", first, expected[0])
	}
	if last, ok := tree.Last(); !ok || last != expected[len(expected)-1] {
		t.Fatalf("last: actual: %q  expected: %q", last, expected[len(expected)-1])
	}

	n := 0
	tree.Ascend(func(key string) bool {
		if key != expected[n] {
			t.Fatalf("next item: actual: %q  expected: %q", key, expected[n])
		}
		n += 1
		return true
	})
	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}

	n = 0
	tree.Descend(func(key string) bool {
		i := len(expected) - 1 - n
		if key != expected[i] {
			t.Fatalf("prev item: actual: %q  expected: %q", key, expected[i])
		}
		n += 1
		return true
	})
	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}
	if n != tree.Len() {
		t.Fatalf("tree count: actual: %d  expected: %d", tree.Len(), n)
	}

	// stop part way
	n = 0
	tree.Ascend(func(key string) bool {
		n += 1
		return n < 3
	})
	if len(expected) >= 3 && 3 != n {
		t.Fatalf("early stop: visited: %d", n)
	}

	// delete remainder
	for _, key := range expected {
		tree.Remove(key)
	}

	if !tree.IsEmpty() {
		depth := tree.Print(logWriter{t})
		t.Logf("depth: %d", depth)
		t.Fatalf("remainder: remaining nodes")
	}
	if 0 != tree.Len() {
		t.Fatalf("remaining count not zero: %d", tree.Len())
	}
	if _, ok := tree.First(); ok {
		t.Fatalf("first item in empty tree")
	}
}

// use indexing to fetch each item
func doGet(t *testing.T, tree avl.Set[string], addList []string) {

	unique := make(map[string]struct{})
	for _, key := range addList {
		unique[key] = struct{}{}
		tree.Insert(key)
	}

	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)

	if len(expected) != tree.Len() {
		t.Fatalf("expected: %d items, but tree count: %d", len(expected), tree.Len())
	}

	for index, key := range expected {
		value, ok := tree.Get(index)
		if !ok {
			t.Fatalf("[%d] key: %q not in tree", index, key)
		}
		if value != key {
			t.Fatalf("[%d]: expected: %q but found: %q", index, key, value)
		}
		if index1 := tree.Index(key); index != index1 {
			t.Errorf("[%d]: search: %q index: %d expected: %d", index, key, index1, index)
		}
	}
	if _, ok := tree.Get(len(expected)); ok {
		t.Fatalf("get beyond end succeeded")
	}
	if _, ok := tree.Get(-1); ok {
		t.Fatalf("get before start succeeded")
	}

	// delete even elements
	for index, key := range expected {
		if 0 == index%2 {
			tree.Remove(key)
		}
	}

	// check odd elements are all present
odd_scan:
	for index, key := range expected {
		if 0 == index%2 {
			if -1 != tree.Index(key) {
				t.Fatalf("deleted key: %q still indexed", key)
			}
			continue odd_scan
		}
		index >>= 1 // 1,3,5, … → 0,1,2, …
		value, ok := tree.Get(index)
		if !ok {
			t.Fatalf("[%d] key: %q not in tree", index, key)
		}
		if value != key {
			t.Fatalf("[%d]: expected: %q but found: %q", index, key, value)
		}
	}
	if err := tree.Check(); nil != err {
		t.Fatalf("check failed: %s", err)
	}
}

func makeKey() string {

	b := make([]byte, 4)
	_, err := rand.Read(b)
	if nil != err {
		panic("rand failed")
	}
	n := int(binary.BigEndian.Uint32(b))
	return fmt.Sprintf("%04d", n%10000)
}

func TestRandomTree(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			randomTree(t, b.strings, 2200, 2000)
			randomTree(t, b.strings, 3400, 2760)
			randomTree(t, b.strings, 5467, 1234)

			for i := 0; i < 5; i += 1 {
				randomTree(t, b.strings, 2100, 2000)
			}
		})
	}
}

func randomTree(t *testing.T, makeTree func() avl.Set[string], total int, toDelete int) {

	if toDelete > total {
		t.Fatalf("failed: total: %d  < deletions: %d", total, toDelete)
	}

	tree := makeTree()
	d := make([]string, toDelete)

	for i := 0; i < total; i += 1 {
		key := makeKey()
		if i < len(d) {
			d[i] = key
		}
		tree.Insert(key)
	}

	if err := tree.Check(); nil != err {
		depth := tree.Print(logWriter{t})
		t.Logf("depth: %d", depth)
		t.Fatalf("inconsistent tree: %s", err)
	}

	for _, key := range d {
		tree.Remove(key)
		if tree.Contains(key) {
			t.Fatalf("deleted key: %q still present", key)
		}
	}
	if err := tree.Check(); nil != err {
		depth := tree.Print(logWriter{t})
		t.Logf("depth: %d", depth)
		t.Fatalf("inconsistent tree: %s", err)
	}

	// add back the test value, keys are 4 digits so this is unique
	const testKey = "500"
	if !tree.Insert(testKey) {
		t.Fatalf("test key: %q already present", testKey)
	}

	if err := tree.Check(); nil != err {
		depth := tree.Print(logWriter{t})
		t.Logf("depth: %d", depth)
		t.Fatalf("inconsistent tree: %s", err)
	}

	doTraverse(t, makeTree(), d)
	doGet(t, makeTree(), d)

	// check that test value is searchable
	index := tree.Index(testKey)
	if index < 0 {
		t.Fatalf("could not find test key: %q", testKey)
	}
	if value, _ := tree.Get(index); testKey != value {
		t.Fatalf("test key mismatch: actual: %q  expected: %q", value, testKey)
	}

	// delete the test value, and check it is no longer in the tree
	if !tree.Remove(testKey) {
		t.Fatalf("delete: %q not found", testKey)
	}
	if tree.Contains(testKey) {
		t.Fatalf("test key not deleted: %q", testKey)
	}
	if tree.Remove(testKey) {
		t.Fatalf("test key deleted twice: %q", testKey)
	}
}

// send Print output to the test log
type logWriter struct {
	t *testing.T
}

func (w logWriter) Write(p []byte) (int, error) {
	w.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

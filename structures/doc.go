// Package structures ships ready-made finitizations and invariants for
// classic linked data structures. They double as usage examples and as the
// reference workloads of the CLI and the test suite.
//
//	Name        Shape                                       Valid count
//	binarytree  BinaryTree{root,size}, Node{left,right}     Catalan(n)
//	searchtree  binarytree + Node.key in [0,n), BST         Catalan(n)
//	linkedlist  List{header,size}, Node{next,elem}, Elem    n!
//	sortedlist  SortedList{header,size}, Node{next,value}   C(2n-1, n)
//	heaparray   HeapArray{size,array}, int[] of cap n       see heaparray.go
//
// Every Space function takes the bound n (node count or capacity).
package structures

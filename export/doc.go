// SPDX-License-Identifier: MIT
// Package export writes traversal results as CSV, one record per node or
// per classified edge, in the store's registration order.
//
//	WriteBFS       label,id,parent,distance   parent "" for root/unreached, distance "inf" if unreached
//	WriteDFSNodes  label,id,discovery,finish
//	WriteDFSEdges  tail,head,kind             classified edges only
//
// No header row is written.
package export

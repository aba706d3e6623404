// Package recipe interprets scripted simulation drivers: ordered command
// lists that mutate a grid one instruction per cycle.
//
// Recipe text format:
//
//   - One command per line: an uppercase command name followed by
//     space-delimited arguments.
//   - Tokens that parse as integers are integer arguments; anything else
//     is a string argument (which is how string node ids are spelled).
//   - Blank lines and lines starting with '#' are ignored.
//
// Command set:
//
//	ADDN x y z [id]   add a node
//	ADDR x y z [id]   add a robot node
//	RMVN x y z | id   remove a node by coordinates or by id
//	SEND data sx sy sz dx dy dz | SEND data src_id dest_id
//	WAIT n            do nothing for n+1 ExecuteNext calls
//	LOOP n            run the enclosed block n+1 times (negative: forever)
//	ENDL              close the innermost LOOP
//	PAUSE             suspend until Resume is called
//
// The interpreter executes one command per ExecuteNext call, which the
// driver pairs with one grid Step per cycle. Nested loops are rejected at
// run time; an ENDL without an open LOOP likewise. A failed command aborts
// the recipe with an error carrying its line number; the grid itself stays
// consistent.
package recipe

// Package kernel holds the value objects shared by every dashboard aggregate:
//   - Role: the viewer perspective (buyer, seller, delivery)
//   - Money: a non-negative amount in cents
package kernel

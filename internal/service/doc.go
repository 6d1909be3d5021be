// Package service contains the domain services of the employee-records
// system: the employee aggregate lifecycle plus the dependent role, skill,
// and account services. This layer enforces the entity invariants, the
// cascading soft-delete semantics, the uniqueness constraints, and the
// authentication flow; the HTTP and persistence layers around it stay thin.
package service

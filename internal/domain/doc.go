// Package domain contains the types shared by the entity sub-packages:
// sentinel errors, the attribute-level ValidationError and the model and
// operation errors raised by the lifecycle and the services. Entities live in
// sub-packages (domain/task, domain/taskstatus); the rule engine they share
// lives in domain/model.
package domain

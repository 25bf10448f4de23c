// Package errors provides the coded error type used across the skill simulator.
//
// Errors carry a Code, a user-facing message, an optional cause and metadata.
// Repositories and orchestrators return these errors; the gRPC handlers
// convert them with ToGRPCError at the transport boundary. The search engine
// itself never fails and does not use this package.
//
// # Basic Usage
//
//	err := errors.NotFoundf("snapshot %s not found", path)
//	err := errors.DataLossf("catalog:armor:%d has a corrupt defense", id)
//
// Wrapping keeps the code of a wrapped Error and defaults to Internal for
// foreign errors:
//
//	if err := repo.PutArmor(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to import armor snapshot")
//	}
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired(errors.FieldPath("requirements", i, "name"), skill.Name, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return NotFound for missing snapshots, InvalidArgument for bad items
//   - Return DataLoss for stored hashes that can not be decoded
//
// Orchestrator layer:
//   - Validate config with ValidationBuilder
//   - Wrap repository errors with what the search was doing
//
// Handler layer:
//   - Validate requests and convert errors with ToGRPCError
package errors

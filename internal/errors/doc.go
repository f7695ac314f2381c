// Package errors provides structured errors for rpg-combat.
//
// Every error carries a Code, a message safe to show in a combat log, an
// optional cause and free-form metadata:
//
//	err := errors.NotFound("battle not found").
//	    WithMeta("battle_id", battleID)
//
// Wrapping keeps the code of the wrapped error unless a new one is given:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to load battle")
//	}
//
// Catalog registration failures (duplicate names, unordered spell tiers,
// unknown effect names) are reported as InvalidArgument or AlreadyExists at
// startup. Anything that reaches a cast and is still misconfigured is
// Internal.
//
// Config structs validate themselves with a ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Engine == nil {
//	    vb.RequiredField("Engine")
//	}
//	return vb.Build()
package errors

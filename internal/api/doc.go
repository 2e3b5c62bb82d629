// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

// Package api provides the HTTP surface over the catalog and recipe
// stores using the Chi router.
//
// Routes (v1):
//
//	GET    /health                                    liveness + dependency summary
//	GET    /ready                                     readiness probe (badger ping)
//	GET    /metrics                                   Prometheus handler
//	POST   /api/v1/ingredients                        create catalog ingredient
//	GET    /api/v1/ingredients                        list catalog (?name= exact filter)
//	PATCH  /api/v1/ingredients/{id}                   partial edit
//	DELETE /api/v1/ingredients/{id}                   delete
//	POST   /api/v1/recipes                            create recipe (owner = X-User-ID)
//	GET    /api/v1/recipes                            ?owner= list, +&title= exact get
//	GET    /api/v1/recipes/{id}                       fetch by ID
//	DELETE /api/v1/recipes/{id}                       delete + publish recipe.deleted
//	POST   /api/v1/recipes/{id}/copy                  copy into the caller's namespace
//	POST   /api/v1/recipes/{id}/ingredients           attach by ingredient_id
//	PUT    /api/v1/recipes/{id}/ingredients           parse-and-replace from text
//	GET    /api/v1/recipes/{id}/ingredients           ?scale=k scaled view (default 1)
//	DELETE /api/v1/recipes/{id}/ingredients/{ingID}   detach
//	PUT    /api/v1/recipes/{id}/link                  set link (DELETE removes)
//	PUT    /api/v1/recipes/{id}/description           set description (DELETE removes)
//	PUT    /api/v1/recipes/{id}/image                 set image (DELETE clears)
//	PUT    /api/v1/recipes/{id}/copyflag              set the IsCopy marker
//	GET    /api/v1/search/recipes                     ?ingredients=a,b&title=t&within=id1,id2
//
// Every response uses the models.APIResponse envelope. Domain error
// sentinels map to exactly one status code each: ErrValidation 400,
// ErrNotAuthorized 403, ErrNotFound 404, ErrConflict 409, ErrInvariant
// 422; anything else is a 500 with the detail kept out of the body.
//
// Mutating routes require an X-User-ID header carrying an opaque
// pre-authenticated principal (401 without it). The value becomes the
// recipe owner on create, the copier on copy, and the requestedBy
// identity on every owner-gated mutation. Read routes take no principal;
// recipe listing is driven by the ?owner= query parameter instead.
//
// The search route dispatches to one of six store query variants based on
// which of the ingredients/title/within parameters are present. Presence
// is detected with url.Values.Has, so "within=" (present but empty) means
// an explicit empty scope and short-circuits to an empty result rather
// than falling back to an unscoped query. Search responses are served
// through the generation-keyed read cache; every successful mutation
// bumps the generation so a search after a write never returns the
// pre-write result.
package api

// Package ecs bridges bramble's interaction events into a [Donburi] world.
//
// [NewDonburiStore] returns a bramble.EntityStore. Widgets bound with
// [DonburiStore.Bind] get an entity carrying a [WidgetComponent], and every
// event their kinds see is published on [InteractionEventType].
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	store.Bind(button)
//	ctx.Store = store
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

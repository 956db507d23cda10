// SPDX-License-Identifier: Unlicense OR MIT

/*
Package glr replays deferred command queues against an OpenGL or OpenGL
ES device.

A producer records two ordered queues: a one-time initialization queue
of resource creation and upload steps, and a per-frame queue of render,
copy, blit and readback steps. Runner.ExecuteInit and
Runner.ExecuteFrame replay them strictly in order against the device,
eliding redundant state transitions along the way with bind-state
caches for texture units, buffer targets, the vertex attribute enable
mask and the read/draw framebuffer targets.

A capability descriptor queried once at startup selects among device
feature tiers: combined versus separate depth/stencil storage, core
versus EXT framebuffer objects, and the available copy-image entry
points. Callers above this package issue capability-agnostic commands.

Execution is single threaded: every Runner method must be called from
the thread that owns the GL context.
*/
package glr

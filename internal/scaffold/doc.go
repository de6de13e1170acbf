// Package scaffold materializes project template trees onto disk. It walks a
// base tree, overlays an optional theme tree on top of it, and substitutes
// {{KEY}} placeholders in every text file it writes. It powers "aury-web init"
// and the docker/docs generators.
package scaffold

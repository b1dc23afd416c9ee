/*
Package exr parses the header section of scanline OpenEXR containers: the
magic/version preamble, the self-describing attribute stream, and the
scanline-block offset table.

The attribute stream is a sequence of (name, type name, size, value) records
terminated by an empty name. Eight well-known attributes are mandatory and
are routed into fixed Header fields; everything else is preserved in file
order as generic attributes. The offset table length is derived from the
data window height and the compression scheme's scanlines-per-block count.

The package stops at the header: pixel blocks are located through the
decoded offsets but decompressing them (RLE, ZIP, PIZ, PXR24, B44) is left
to the consumer, as are tiled, multi-part and deep-data files.
*/
package exr

/*
Package pack contains the read-only container used to ship generated index
permutations and encoded columns alongside static tables, typically embedded
into the binary with go:embed and decoded once at program start.

A pack is a sorted table of uint64 keys. Named sections are keyed by the
farmhash fingerprint of their name, see SectionKey.

Data Structure Documentation

Pack

A pack contains a series of data blocks followed by an index and
a pack footer.

    Pack layout:
    +---------+---------+---------+-------------+-------------+
    | block 1 |   ...   | block n | block index | pack footer |
    +---------+---------+---------+-------------+-------------+

    Block index:
    +-------------------------+--------------------+-------------------------------+--------------------------+--------+
    | max key block 1 (varint) |  offset 1 (varint) | max key block 2 (varint,delta) |  offset 2 (varint,delta) |   ...  |
    +-------------------------+--------------------+-------------------------------+--------------------------+--------+

    Pack footer:
    +------------------------+------------------+
    | index offset (8 bytes) |  magic (8 bytes) |
    +------------------------+------------------+

Block

A block is a series of entries followed by a single-byte codec tag. The first
key of a block is stored in full, subsequent keys are delta encoded.

    +----------------+----------------------+------------------+----------------------+-------+------------------+
    | key 1 (varint) | value len 1 (varint) | value 1 (varlen) | key 2 (varint,delta) |  ...  | codec (1-byte)   |
    +----------------+----------------------+------------------+----------------------+-------+------------------+

Compressed blocks (snappy, zstd, lz4) store the plain size as a leading varint
before the compressed payload, except snappy which carries its own.

Positions

Index permutations are stored as a varint count followed by one varint per
row position.
*/
package pack

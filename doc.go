/*

Package argon2 implements the Argon2 password hashing function as specified
in RFC 9106 (https://www.rfc-editor.org/rfc/rfc9106), the winner of the
Password Hashing Competition, together with the BLAKE2b hash function it
runs on internally (see the blake2b subpackage).

Argon2 comes in three variants:

Argon2d uses data-dependent memory access, making it fast but vulnerable to
side-channel attacks; unsuitable for hashing secrets such as passwords.

Argon2i uses data-independent memory access, making it suitable for hashing
secret information such as passwords, at the cost of more passes over
memory to reach the same resistance to trade-off attacks.

Argon2id is a hybrid: data-independent addressing for the first half of the
first pass, data-dependent for the rest. It is the variant RFC 9106
recommends by default.

*/
package argon2

/*
Package cash keeps the balance of every address and moves value between
them. Escrow custody is an ordinary cash wallet owned by the escrow address,
so every deposit and payout goes through the CoinMover defined here.
*/
package cash

package saftvrmie

// physical constants
const BOLTZMANN = 1.3806452E-23 //Boltzmann constant [J/K]
const AVOGADRO = 6.023E23       //Avogadro constant [1/mol]

// conversion factors
const ANGSTRON = 1E-10 //1 Angstrom in m
const KILOGRAM = 1E3   //1 kg in g

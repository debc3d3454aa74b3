/*
 * atomicdata.go, part of goato.
 *
 *
 * Copyright 2026 The goato authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package ato

type elementData struct {
	symbol string
	name   string
}

//Symbols and names, indexed by atomic number minus one.
var elementTable = [...]elementData{
	{"H", "Hydrogen"},
	{"He", "Helium"},
	{"Li", "Lithium"},
	{"Be", "Beryllium"},
	{"B", "Boron"},
	{"C", "Carbon"},
	{"N", "Nitrogen"},
	{"O", "Oxygen"},
	{"F", "Fluorine"},
	{"Ne", "Neon"},
	{"Na", "Sodium"},
	{"Mg", "Magnesium"},
	{"Al", "Aluminum"},
	{"Si", "Silicon"},
	{"P", "Phosphorus"},
	{"S", "Sulfur"},
	{"Cl", "Chlorine"},
	{"Ar", "Argon"},
	{"K", "Potassium"},
	{"Ca", "Calcium"},
	{"Sc", "Scandium"},
	{"Ti", "Titanium"},
	{"V", "Vanadium"},
	{"Cr", "Chromium"},
	{"Mn", "Manganese"},
	{"Fe", "Iron"},
	{"Co", "Cobalt"},
	{"Ni", "Nickel"},
	{"Cu", "Copper"},
	{"Zn", "Zinc"},
	{"Ga", "Gallium"},
	{"Ge", "Germanium"},
	{"As", "Arsenic"},
	{"Se", "Selenium"},
	{"Br", "Bromine"},
	{"Kr", "Krypton"},
	{"Rb", "Rubidium"},
	{"Sr", "Strontium"},
	{"Y", "Yttrium"},
	{"Zr", "Zirconium"},
	{"Nb", "Niobium"},
	{"Mo", "Molybdenum"},
	{"Tc", "Technetium"},
	{"Ru", "Ruthenium"},
	{"Rh", "Rhodium"},
	{"Pd", "Palladium"},
	{"Ag", "Silver"},
	{"Cd", "Cadmium"},
	{"In", "Indium"},
	{"Sn", "Tin"},
	{"Sb", "Antimony"},
	{"Te", "Tellurium"},
	{"I", "Iodine"},
	{"Xe", "Xenon"},
	{"Cs", "Cesium"},
	{"Ba", "Barium"},
	{"La", "Lanthanum"},
	{"Ce", "Cerium"},
	{"Pr", "Praseodymium"},
	{"Nd", "Neodymium"},
	{"Pm", "Promethium"},
	{"Sm", "Samarium"},
	{"Eu", "Europium"},
	{"Gd", "Gadolinium"},
	{"Tb", "Terbium"},
	{"Dy", "Dysprosium"},
	{"Ho", "Holmium"},
	{"Er", "Erbium"},
	{"Tm", "Thulium"},
	{"Yb", "Ytterbium"},
	{"Lu", "Lutetium"},
	{"Hf", "Hafnium"},
	{"Ta", "Tantalum"},
	{"W", "Wolfram"},
	{"Re", "Rhenium"},
	{"Os", "Osmium"},
	{"Ir", "Iridium"},
	{"Pt", "Platinum"},
	{"Au", "Gold"},
	{"Hg", "Mercury"},
	{"Tl", "Thallium"},
	{"Pb", "Lead"},
	{"Bi", "Bismuth"},
	{"Po", "Polonium"},
	{"At", "Astatine"},
	{"Rn", "Radon"},
	{"Fr", "Francium"},
	{"Ra", "Radium"},
	{"Ac", "Actinium"},
	{"Th", "Thorium"},
	{"Pa", "Protactinium"},
	{"U", "Uranium"},
	{"Np", "Neptunium"},
	{"Pu", "Plutonium"},
	{"Am", "Americium"},
	{"Cm", "Curium"},
	{"Bk", "Berkelium"},
	{"Cf", "Californium"},
	{"Es", "Einsteinium"},
	{"Fm", "Fermium"},
	{"Md", "Mendelevium"},
	{"No", "Nobelium"},
	{"Lr", "Lawrencium"},
	{"Rf", "Rutherfordium"},
	{"Db", "Dubnium"},
	{"Sg", "Seaborgium"},
	{"Bh", "Bohrium"},
	{"Hs", "Hassium"},
	{"Mt", "Meitnerium"},
	{"Ds", "Darmstadtium"},
	{"Rg", "Roentgenium"},
	{"Cn", "Copernicium"},
	{"Nh", "Nihonium"},
	{"Fl", "Flerovium"},
	{"Mc", "Moscovium"},
	{"Lv", "Livermorium"},
	{"Ts", "Tennessine"},
	{"Og", "Oganesson"},
}

//A map for assigning mass to elements.
//Note that just common "bio-elements" are present
var elementMass = map[Element]float64{
	H:  1.0,
	C:  12.01,
	O:  16.00,
	N:  14.01,
	P:  30.97,
	S:  32.06,
	Se: 78.96,
	K:  39.1,
	Ca: 40.08,
	Mg: 24.30,
	Cl: 35.45,
	Na: 22.99,
	Cu: 63.55,
	Zn: 65.38,
	Co: 58.93,
	Fe: 55.84,
	Mn: 54.94,
	Cr: 51.996,
	Si: 28.08,
	Be: 9.012,
	F:  18.998,
	Br: 79.904,
	I:  126.90,
}

//Covalent radii in A, from Cordero et al., 2008 (DOI:10.1039/B801115J)
var elementCovrad = map[Element]float64{
	H:  0.31,
	C:  0.76, //the sp3 radius
	O:  0.66,
	N:  0.71,
	P:  1.07,
	S:  1.05,
	Se: 1.2,
	K:  2.03,
	Ca: 1.76,
	Mg: 1.41,
	Cl: 1.02,
	Na: 1.66,
	Cu: 1.32,
	Zn: 1.22,
	Co: 1.5,  // hs
	Fe: 1.52, //hs
	Mn: 1.61, //hs
	Cr: 1.39,
	Si: 1.11,
	Be: 0.96,
	F:  0.57,
	Br: 1.2,
	I:  1.39,
}

//Mass returns the atomic mass of the element in amu, and false
//if the element is not in the table.
func (e Element) Mass() (float64, bool) {
	m, ok := elementMass[e]
	return m, ok
}

//CovalentRadius returns the covalent radius of the element in A, and false
//if the element is not in the table.
func (e Element) CovalentRadius() (float64, bool) {
	r, ok := elementCovrad[e]
	return r, ok
}
